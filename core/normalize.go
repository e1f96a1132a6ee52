package core

import (
	"math"
	"strconv"
	"strings"
)

// ImageMode picks the canonical image representation a flow needs.
type ImageMode int

const (
	ImageModeBlob    ImageMode = iota // in-memory preview flows
	ImageModeDataURI                  // flows that hand the record to a store
)

// Normalize coerces a raw field bag into a SubmissionRecord for a fresh submission.
// Text is never trimmed; whitespace is left for the validators to judge.
func Normalize(raw RawInput, mode ImageMode) SubmissionRecord {
	rec := SubmissionRecord{IsNew: true}
	mark := func(field string) {
		if rec.Malformed == nil {
			rec.Malformed = make(map[string]bool)
		}
		rec.Malformed[field] = true
	}
	text := func(field string) string {
		v := raw.Get(field)
		switch v.Kind() {
		case KindAbsent:
			return ""
		case KindText:
			s, _ := v.AsText()
			return s
		}
		mark(field)
		return ""
	}

	rec.Name = text(FieldName)
	rec.Email = text(FieldEmail)
	rec.Password = text(FieldPassword)
	rec.ConfirmPassword = text(FieldConfirmPassword)
	rec.Gender = Gender(text(FieldGender))
	rec.Country = text(FieldCountry)
	rec.Age = normalizeAge(raw.Get(FieldAge))

	terms, ok := normalizeTerms(raw.Get(FieldTermsAccepted))
	if !ok {
		mark(FieldTermsAccepted)
	}
	rec.TermsAccepted = terms

	img, ok := normalizeImage(raw.Get(FieldImage), raw.Get(FieldImageBase64), mode)
	if !ok {
		mark(FieldImage)
	}
	rec.Image = img

	return rec
}

// normalizeAge leaves an empty entry unset so "missing" and "zero" stay distinct.
func normalizeAge(v Value) Age {
	switch v.Kind() {
	case KindAbsent:
		return Age{}
	case KindNumber:
		f, _ := v.AsNumber()
		return Age{Set: true, Numeric: finite(f), Raw: f}
	case KindText:
		s, _ := v.AsText()
		if s == "" {
			return Age{}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(f) {
			return Age{Set: true}
		}
		return Age{Set: true, Numeric: true, Raw: f}
	}
	return Age{Set: true}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// normalizeTerms accepts booleans and the text an HTML checkbox produces.
func normalizeTerms(v Value) (bool, bool) {
	switch v.Kind() {
	case KindAbsent:
		return false, true
	case KindBoolean:
		b, _ := v.AsBool()
		return b, true
	case KindText:
		s, _ := v.AsText()
		switch strings.ToLower(s) {
		case "on", "true", "1", "yes":
			return true, true
		case "", "off", "false", "0", "no":
			return false, true
		}
	}
	return false, false
}

// normalizeImage resolves the image field (and the separate base64 field) to one
// canonical representation. When both a blob and a data URI exist the data URI wins
// and the blob survives only as Preview.
func normalizeImage(img, encoded Value, mode ImageMode) (Image, bool) {
	var (
		blob    *Blob
		dataURI string
		ok      = true
	)

	switch img.Kind() {
	case KindAbsent:
	case KindBlob:
		b, _ := img.AsBlob()
		if len(b.Data) > 0 {
			b.Size = int64(len(b.Data)) // the bytes win over a declared size
		}
		blob = &b
	case KindDataURI:
		dataURI, _ = img.AsText()
	case KindText:
		s, _ := img.AsText()
		if strings.HasPrefix(s, "data:") {
			dataURI = s
		} else if s != "" {
			ok = false
		}
	default:
		ok = false
	}

	switch encoded.Kind() {
	case KindDataURI, KindText:
		if s, _ := encoded.AsText(); s != "" {
			dataURI = s
		}
	case KindAbsent:
	default:
		ok = false
	}

	out := Image{Preview: blob}
	switch {
	case dataURI != "":
		out.DataURI = dataURI
	case blob != nil && mode == ImageModeDataURI && len(blob.Data) > 0:
		out.DataURI = EncodeDataURI(blob.MIMEType, blob.Data)
	case blob != nil:
		out.Blob = blob
		if mode == ImageModeDataURI {
			// a store needs the bytes; metadata alone is no usable image
			ok = false
		}
	}
	return out, ok
}
