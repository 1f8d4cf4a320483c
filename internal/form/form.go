// Package form holds the data-entry components: they validate input locally and hand valid
// submissions to the resource clients. A validation failure never reaches the network.
package form

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	ErrSubmitting  = errors.New("form: submission already in progress")
	ErrNoEmployees = errors.New("form: no employees available")
)

// FieldErrors maps a field name to its message. A non-empty FieldErrors is returned as the
// error of a rejected submission.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func tooShort(s string, min int) bool {
	return utf8.RuneCountInString(s) < min
}

// errorMessage is what a form shows for a failed submission.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
