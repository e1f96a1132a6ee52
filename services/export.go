package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Submissions"

var exportHeaders = []string{
	"Variant", "Name", "Age", "Email", "Gender", "Terms & Conditions", "Country", "Image", "New", "Submitted At",
}

// ExportXLSX writes every stored submission as one spreadsheet row under a header row.
// Password hashes and image bytes are left out.
func (s *submissionService) ExportXLSX(w io.Writer) error {
	items, err := s.repo.List()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn("xlsx close error", map[string]string{"err": err.Error()})
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, 1, toAny(exportHeaders)); err != nil {
		return err
	}

	for i, it := range items {
		terms := "Not Accepted"
		if it.TermsAccepted {
			terms = "Accepted"
		}
		image := yesNo(it.ImageBase64 != "")
		row := []any{
			string(it.Variant), it.Name, it.Age, it.Email, it.Gender, terms, it.Country, image, yesNo(it.IsNew),
			it.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	s.log.Info("xlsx export", map[string]string{"rows": fmt.Sprint(len(items))})
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
