// GORM model + DTOs shared by handlers, services and repositories.

package models

import (
	"time"

	"FormLab/core"
)

// Variant names one of the two form implementations; each keeps its own "latest" slot.
type Variant string

const (
	VariantUncontrolled Variant = "uncontrolled" // fields read manually on submit
	VariantManaged      Variant = "managed"      // fields driven by a form-state library
)

// Variants in main-page order.
var Variants = []Variant{VariantUncontrolled, VariantManaged}

// ParseVariant maps a URL segment to a known variant.
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Submission is the stored copy of a valid form submission.
// One row per variant: saving again overwrites it.
// The plaintext password never reaches a store, only its bcrypt hash.
type Submission struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Variant       Variant   `gorm:"size:32;uniqueIndex;not null" json:"variant"`
	Name          string    `gorm:"size:120;not null" json:"name"`
	Age           int       `gorm:"not null" json:"age"`
	Email         string    `gorm:"size:180;not null" json:"email"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	Gender        string    `gorm:"size:16;not null" json:"gender"`
	TermsAccepted bool      `json:"termsAccepted"`
	Country       string    `gorm:"size:120;not null" json:"country"`
	ImageBase64   string    `gorm:"size:8000000" json:"imageBase64,omitempty"` // data URI, up to 5 MiB decoded
	IsNew         bool      `json:"isNew"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PasswordStrengthRequest is the payload for live strength feedback.
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// Overview is the main-page envelope: the latest submission per variant, nil when none yet.
type Overview struct {
	Uncontrolled *Submission `json:"uncontrolled"`
	Managed      *Submission `json:"managed"`
}

// ValidationFailure is the 422 body.
type ValidationFailure struct {
	Errors map[string]string `json:"errors"`
}

// CheckResponse answers a live validation request.
type CheckResponse struct {
	Errors           map[string]string     `json:"errors"`
	IsValid          bool                  `json:"isValid"`
	PasswordStrength core.PasswordStrength `json:"passwordStrength"`
}
