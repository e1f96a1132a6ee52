package core

// Validator runs every field rule against one record under a Policy.
// It holds no per-call state, so one instance serves all requests.
type Validator struct {
	policy Policy
	known  map[string]struct{} // nil unless Policy.CountryMustExist
}

// NewValidator builds a validator; countries is the reference list used when
// the policy requires an exact country match.
func NewValidator(policy Policy, countries []string) *Validator {
	v := &Validator{policy: policy}
	if policy.CountryMustExist {
		v.known = make(map[string]struct{}, len(countries))
		for _, c := range countries {
			v.known[c] = struct{}{}
		}
	}
	return v
}

func (v *Validator) Policy() Policy { return v.policy }

// Validate collects every failing field; it never stops at the first one and never panics
// on odd input. A malformed field reports its field-level message instead of running the rule.
func (v *Validator) Validate(rec SubmissionRecord) ValidationResult {
	errs := make(map[string]string)
	check := func(field string, o Outcome) {
		if !o.Valid {
			errs[field] = o.Message
		}
	}

	check(FieldName, guard(rec, FieldName, msgNameRequired, func() Outcome { return ValidateName(rec.Name) }))
	check(FieldAge, guard(rec, FieldAge, msgAgeNumber, func() Outcome {
		return ValidateAge(rec.Age, v.policy.AgeMin, v.policy.AgeMax)
	}))
	check(FieldEmail, guard(rec, FieldEmail, msgEmailInvalid, func() Outcome { return ValidateEmail(rec.Email) }))
	check(FieldPassword, guard(rec, FieldPassword, msgPasswordRequired, func() Outcome { return ValidatePassword(rec.Password) }))
	// both values come from the same snapshot, so there is no ordering concern
	check(FieldConfirmPassword, guard(rec, FieldConfirmPassword, msgConfirmRequired, func() Outcome {
		return ValidateConfirmPassword(rec.ConfirmPassword, rec.Password)
	}))
	check(FieldGender, guard(rec, FieldGender, msgGenderRequired, func() Outcome { return ValidateGender(rec.Gender) }))
	check(FieldTermsAccepted, guard(rec, FieldTermsAccepted, msgTermsRequired, func() Outcome { return ValidateTerms(rec.TermsAccepted) }))
	check(FieldCountry, guard(rec, FieldCountry, msgCountryRequired, func() Outcome { return ValidateCountry(rec.Country, v.known) }))
	check(FieldImage, guard(rec, FieldImage, msgImageInvalid, func() Outcome {
		return ValidateImage(rec.Image, v.policy.ImageRequired)
	}))

	return ValidationResult{Errors: errs, IsValid: len(errs) == 0}
}

func guard(rec SubmissionRecord, field, msg string, rule func() Outcome) Outcome {
	if rec.malformed(field) {
		return Invalid(msg)
	}
	return rule()
}
