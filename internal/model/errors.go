package model

import "fmt"

// ErrorBody is the backend's failure body: {"detail": "..."}.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// SchemaError reports a backend payload that does not match its schema.
type SchemaError struct {
	Entity string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s payload: %s %s", e.Entity, e.Field, e.Reason)
}
