package core

import (
	"fmt"

	"github.com/go-playground/validator/v10" // email grammar, the same rule gin's `binding:"email"` uses
)

const (
	msgNameRequired    = "Name is required"
	msgNameUppercase   = "First letter must be uppercase"
	msgAgeRequired     = "Age is required"
	msgAgeNumber       = "Age must be a number"
	msgAgeWhole        = "Age must be a whole number"
	msgAgePositive     = "Age must be positive"
	msgEmailRequired   = "Email is required"
	msgEmailInvalid    = "Invalid email format"
	msgGenderRequired  = "Gender is required"
	msgTermsRequired   = "You must accept Terms and Conditions"
	msgCountryRequired = "Country is required"
	msgCountryUnknown  = "Country must be selected from the list"
)

// validator.Validate caches rule parsing and is safe for concurrent use.
var fieldRules = validator.New()

func ValidateName(name string) Outcome {
	if name == "" {
		return Invalid(msgNameRequired)
	}
	// ASCII A-Z only, like the password character classes
	if name[0] < 'A' || name[0] > 'Z' {
		return Invalid(msgNameUppercase)
	}
	return Valid()
}

// ValidateAge applies "positive" always and [lo,hi] when either bound is non-zero.
func ValidateAge(a Age, lo, hi int) Outcome {
	switch {
	case !a.Set:
		return Invalid(msgAgeRequired)
	case !a.Numeric:
		return Invalid(msgAgeNumber)
	case a.Raw <= 0:
		return Invalid(msgAgePositive)
	case !a.Integral():
		return Invalid(msgAgeWhole)
	}
	n, _ := a.Int()
	if (lo > 0 && n < lo) || (hi > 0 && n > hi) {
		return Invalid(ageRangeMessage(lo, hi))
	}
	return Valid()
}

func ageRangeMessage(lo, hi int) string {
	switch {
	case lo > 0 && hi > 0:
		return fmt.Sprintf("Age must be between %d and %d", lo, hi)
	case lo > 0:
		return fmt.Sprintf("Age must be at least %d", lo)
	default:
		return fmt.Sprintf("Age must be at most %d", hi)
	}
}

func ValidateEmail(email string) Outcome {
	if email == "" {
		return Invalid(msgEmailRequired)
	}
	if err := fieldRules.Var(email, "email"); err != nil {
		return Invalid(msgEmailInvalid)
	}
	return Valid()
}

func ValidateGender(g Gender) Outcome {
	if !g.Valid() {
		return Invalid(msgGenderRequired)
	}
	return Valid()
}

func ValidateTerms(accepted bool) Outcome {
	if !accepted {
		return Invalid(msgTermsRequired)
	}
	return Valid()
}

// ValidateCountry always requires a value; known is consulted only when non-nil.
func ValidateCountry(country string, known map[string]struct{}) Outcome {
	if country == "" {
		return Invalid(msgCountryRequired)
	}
	if known != nil {
		if _, ok := known[country]; !ok {
			return Invalid(msgCountryUnknown)
		}
	}
	return Valid()
}
