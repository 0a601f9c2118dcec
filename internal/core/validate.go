package core

import (
	"fmt"
	"strings"
)

// Field identifies which form input a validation error refers to.
type Field int

const (
	FieldName Field = iota
	FieldOptionDate
	FieldOptionTimeSlot
)

// FieldRef points at a concrete form input. Index is the preferred-option
// position for the option fields and ignored for FieldName.
type FieldRef struct {
	Field Field
	Index int
}

// FieldError is one violated input. Validation reports every violation at
// once so a caller can highlight all offending inputs together.
type FieldError struct {
	Ref     FieldRef
	Message string
}

// ValidationError carries the full set of field errors for a rejected
// create or edit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "invalid meeting: " + strings.Join(msgs, "; ")
}

// IsRequired reports whether the preferred option at index must be filled
// in. Only the first option is mandatory.
func IsRequired(index int) bool {
	return index < 1
}

// Validate checks a form and returns every violated field. An empty result
// means the form may be submitted.
func Validate(form FormData) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{
			Ref:     FieldRef{Field: FieldName},
			Message: "name is required",
		})
	}

	for i := range form.PreferredOptions {
		if !IsRequired(i) {
			continue
		}
		o := form.PreferredOptions[i]
		if o.Date == "" {
			errs = append(errs, FieldError{
				Ref:     FieldRef{Field: FieldOptionDate, Index: i},
				Message: fmt.Sprintf("preferred date #%d is required", i+1),
			})
		}
		if o.TimeSlot == "" {
			errs = append(errs, FieldError{
				Ref:     FieldRef{Field: FieldOptionTimeSlot, Index: i},
				Message: fmt.Sprintf("preferred time slot #%d is required", i+1),
			})
		}
	}

	return errs
}
