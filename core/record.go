package core

import "math"

// Field names double as the keys of ValidationResult.Errors and of RawInput.
const (
	FieldName            = "name"
	FieldAge             = "age"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldGender          = "gender"
	FieldTermsAccepted   = "termsAccepted"
	FieldCountry         = "country"
	FieldImage           = "image"
	FieldImageBase64     = "imageBase64" // managed forms send the encoded image under its own key
)

// Fields lists every validated field in display order.
var Fields = []string{
	FieldName, FieldAge, FieldEmail, FieldPassword, FieldConfirmPassword,
	FieldGender, FieldTermsAccepted, FieldCountry, FieldImage,
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Age keeps "missing" apart from "zero" and from "not a number".
type Age struct {
	Set     bool    // something was entered
	Numeric bool    // what was entered parsed as a number
	Raw     float64 // parsed number, may be fractional
}

// Int returns the whole-number age; ok is false unless the age is set, numeric and integral.
func (a Age) Int() (int, bool) {
	if !a.Set || !a.Numeric || !a.Integral() {
		return 0, false
	}
	return int(a.Raw), true
}

// Integral reports whether Raw is a whole number that fits an int32.
func (a Age) Integral() bool {
	return math.Trunc(a.Raw) == a.Raw && math.Abs(a.Raw) <= math.MaxInt32
}

// Image holds exactly one canonical representation (Blob or DataURI) or none.
// Preview is a transient blob kept for in-memory preview only; it never goes to a store.
type Image struct {
	Blob    *Blob  `json:"blob,omitempty"`
	DataURI string `json:"dataUri,omitempty"`
	Preview *Blob  `json:"-"`
}

func (i Image) Present() bool { return i.Blob != nil || i.DataURI != "" }

// SubmissionRecord is the canonical, typed form submission.
type SubmissionRecord struct {
	Name            string `json:"name"`
	Age             Age    `json:"-"`
	Email           string `json:"email"`
	Password        string `json:"-"`
	ConfirmPassword string `json:"-"`
	Gender          Gender `json:"gender"`
	TermsAccepted   bool   `json:"termsAccepted"`
	Country         string `json:"country"`
	Image           Image  `json:"image"`
	IsNew           bool   `json:"isNew"`

	// Malformed marks fields whose raw value had a shape the normalizer could not coerce.
	Malformed map[string]bool `json:"-"`
}

func (r SubmissionRecord) malformed(field string) bool { return r.Malformed[field] }

// Outcome is the result of a single field validator.
type Outcome struct {
	Valid   bool
	Message string
}

func Valid() Outcome { return Outcome{Valid: true} }

func Invalid(msg string) Outcome { return Outcome{Message: msg} }

// ValidationResult maps field -> message; a missing key means the field is valid.
type ValidationResult struct {
	Errors  map[string]string `json:"errors"`
	IsValid bool              `json:"isValid"`
}

// Policy carries the toggles source variants disagree on.
type Policy struct {
	ImageRequired    bool
	CountryMustExist bool
	AgeMin           int // 0 = no lower bound beyond "positive"
	AgeMax           int // 0 = no upper bound
}
