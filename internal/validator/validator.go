// Package validator collects field-level violations for write payloads.
// Violations keep the order the rules were checked in, and only the first
// message per field is kept.
package validator

// Violation is a single field-scoped validation failure
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates violations
type Validator struct {
	Violations []Violation
}

// New returns an empty Validator
func New() *Validator {
	return &Validator{}
}

// Valid returns true when no violations were recorded
func (v *Validator) Valid() bool {
	return len(v.Violations) == 0
}

// AddViolation records a violation unless the field already has one
func (v *Validator) AddViolation(field, message string) {
	for _, violation := range v.Violations {
		if violation.Field == field {
			return
		}
	}
	v.Violations = append(v.Violations, Violation{Field: field, Message: message})
}

// Check records a violation when ok is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddViolation(field, message)
	}
}

// In returns true when value equals one of the list entries
func In(value string, list ...string) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}
