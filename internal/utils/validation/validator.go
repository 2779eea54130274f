// Package validation collects field errors for request bodies.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxNoteLength bounds the free text reason stored with a rejection.
const MaxNoteLength = 500

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []FieldError
}

func New() *Validator {
	return &Validator{Errors: make([]FieldError, 0)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
	}
}

func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

func (v *Validator) MaxLength(field, value string, max int) {
	v.Check(utf8.RuneCountInString(value) <= max, field, fmt.Sprintf("must be at most %d characters", max))
}

func (v *Validator) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Check(false, field, "must be one of "+strings.Join(allowed, ", "))
}

// Err joins the collected errors, or returns nil.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("invalid request: %s", strings.Join(msgs, "; "))
}
