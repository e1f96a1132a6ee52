package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  PasswordStrength
	}{
		{"empty", "", PasswordStrength{}},
		{"digits", "123", PasswordStrength{HasNumber: true}},
		{"letters", "aB", PasswordStrength{HasUpperCase: true, HasLowerCase: true}},
		{"backslash", `\`, PasswordStrength{HasSpecialChar: true}},
		{"space is not special", "Ab1 ", PasswordStrength{HasNumber: true, HasUpperCase: true, HasLowerCase: true}},
		{"all", "Abc123!@", PasswordStrength{true, true, true, true, true}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, CheckPasswordStrength(tc.in))
		})
	}
}

func TestCheckPasswordStrength_EverySpecialChar(t *testing.T) {
	for _, r := range SpecialChars {
		assert.True(t, CheckPasswordStrength(string(r)).HasSpecialChar, "%q", r)
	}
}

// Dropping any one class from a valid password must make it invalid.
func TestValidatePassword_Monotonic(t *testing.T) {
	valid := "Abc123!@"
	assert.True(t, ValidatePassword(valid).Valid)

	for name, pw := range map[string]string{
		"no digit":   "Abcdef!@",
		"no upper":   "abc123!@",
		"no lower":   "ABC123!@",
		"no special": "Abc12345",
	} {
		o := ValidatePassword(pw)
		assert.False(t, o.Valid, name)
		assert.Equal(t, msgPasswordWeak, o.Message, name)
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	assert.Equal(t, "Confirm password is required", ValidateConfirmPassword("", "x").Message)
	assert.Equal(t, "Passwords must match", ValidateConfirmPassword("abc ", "abc").Message)
	assert.True(t, ValidateConfirmPassword("abc", "abc").Valid)
}
