package domain

import "net/url"

// FormSubmission is the result of binding a request to a subject.
type FormSubmission[T any] struct {
	Subject   T
	Submitted bool
	Valid     bool
	Errors    map[string]string
	Preview   PreviewSignal

	// Values holds the raw submitted values for re-rendering.
	Values url.Values
}

// Invalidate marks the submission invalid without adding field errors.
func (f *FormSubmission[T]) Invalidate() {
	f.Valid = false
}

// AddErrors merges field errors and marks the submission invalid.
func (f *FormSubmission[T]) AddErrors(fields map[string]string) {
	if len(fields) == 0 {
		return
	}
	if f.Errors == nil {
		f.Errors = make(map[string]string, len(fields))
	}
	for k, v := range fields {
		f.Errors[k] = v
	}
	f.Valid = false
}
