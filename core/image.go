package core

import (
	"encoding/base64"
	"errors"
	"strings"
)

// MaxImageBytes is the largest accepted image, decoded.
const MaxImageBytes = 5 * 1024 * 1024

const msgImageInvalid = "Image must be a JPEG or PNG file less than 5MB"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// AllowedImageType reports whether mime is JPEG or PNG (parameters and case ignored).
func AllowedImageType(mime string) bool {
	mime, _, _ = strings.Cut(mime, ";")
	return allowedImageTypes[strings.ToLower(strings.TrimSpace(mime))]
}

var ErrNotDataURI = errors.New("not a data uri")

// DataURI is a parsed `data:<mime>[;params][;base64],<payload>` string.
type DataURI struct {
	MIMEType string
	Base64   bool
	Payload  string
}

// ParseDataURI splits s without decoding the payload.
func ParseDataURI(s string) (DataURI, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return DataURI{}, ErrNotDataURI
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, ErrNotDataURI
	}
	parts := strings.Split(header, ";")
	d := DataURI{MIMEType: strings.ToLower(strings.TrimSpace(parts[0])), Payload: payload}
	for _, p := range parts[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			d.Base64 = true
		}
	}
	return d, nil
}

// DecodedLen derives the decoded byte count from the base64 length and its padding.
// For a non-base64 payload it is the payload length.
func (d DataURI) DecodedLen() int64 {
	if !d.Base64 {
		return int64(len(d.Payload))
	}
	n := len(d.Payload)
	pad := n - len(strings.TrimRight(d.Payload, "="))
	if pad > 2 {
		pad = 2
	}
	return int64((n - pad) * 3 / 4)
}

// EncodeDataURI builds a base64 data URI from raw bytes.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ValidateBlob accepts a JPEG or PNG blob of at most MaxImageBytes.
func ValidateBlob(b Blob) Outcome {
	if !AllowedImageType(b.MIMEType) || b.Size < 0 || b.Size > MaxImageBytes {
		return Invalid(msgImageInvalid)
	}
	return Valid()
}

// ValidateDataURI accepts a base64 data URI declaring JPEG or PNG whose decoded size fits.
func ValidateDataURI(s string) Outcome {
	d, err := ParseDataURI(s)
	if err != nil || !d.Base64 || !AllowedImageType(d.MIMEType) {
		return Invalid(msgImageInvalid)
	}
	if d.DecodedLen() > MaxImageBytes {
		return Invalid(msgImageInvalid)
	}
	return Valid()
}

// ValidateImage checks the canonical representation; required decides whether absence fails.
// A missing required image fails with the same message as an unacceptable one.
func ValidateImage(img Image, required bool) Outcome {
	switch {
	case img.DataURI != "":
		return ValidateDataURI(img.DataURI)
	case img.Blob != nil:
		return ValidateBlob(*img.Blob)
	case required:
		return Invalid(msgImageInvalid)
	}
	return Valid()
}
