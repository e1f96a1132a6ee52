package core

import (
	"strings"
	"unicode"
)

// SpecialChars is the fixed set a password must draw at least one symbol from.
const SpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const (
	msgPasswordRequired = "Password is required"
	msgPasswordWeak     = "Password must contain at least 1 number, 1 uppercase letter, 1 lowercase letter, and 1 special character"
)

// PasswordStrength is advisory live feedback; it never gates a submission by itself.
type PasswordStrength struct {
	HasNumber      bool `json:"hasNumber"`
	HasUpperCase   bool `json:"hasUpperCase"`
	HasLowerCase   bool `json:"hasLowerCase"`
	HasSpecialChar bool `json:"hasSpecialChar"`
	Strong         bool `json:"strong"` // all four above
}

// CheckPasswordStrength classifies every rune of pw once.
// Letter and digit classes are ASCII only, matching the composition rule shown to users.
func CheckPasswordStrength(pw string) PasswordStrength {
	var s PasswordStrength
	for _, r := range pw {
		switch {
		case r >= '0' && r <= '9':
			s.HasNumber = true
		case r >= 'A' && r <= 'Z':
			s.HasUpperCase = true
		case r >= 'a' && r <= 'z':
			s.HasLowerCase = true
		case r < unicode.MaxASCII && strings.ContainsRune(SpecialChars, r):
			s.HasSpecialChar = true
		}
	}
	s.Strong = s.HasNumber && s.HasUpperCase && s.HasLowerCase && s.HasSpecialChar
	return s
}

// ValidatePassword gates on presence and on the aggregate strength.
func ValidatePassword(pw string) Outcome {
	if pw == "" {
		return Invalid(msgPasswordRequired)
	}
	if !CheckPasswordStrength(pw).Strong {
		return Invalid(msgPasswordWeak)
	}
	return Valid()
}

const (
	msgConfirmRequired = "Confirm password is required"
	msgPasswordsMatch  = "Passwords must match"
)

// ValidateConfirmPassword compares against the password of the same snapshot.
func ValidateConfirmPassword(confirm, password string) Outcome {
	if confirm == "" {
		return Invalid(msgConfirmRequired)
	}
	if confirm != password {
		return Invalid(msgPasswordsMatch)
	}
	return Valid()
}
