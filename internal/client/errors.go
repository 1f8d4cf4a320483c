package client

import (
	"errors"
	"fmt"
)

// Kind classifies why a call failed.
type Kind int

const (
	// KindServer: the backend answered with a non-2xx status.
	KindServer Kind = iota + 1
	// KindNetwork: the request never got a response.
	KindNetwork
	// KindUnexpected: anything else, including payloads that fail schema checks.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindUnexpected:
		return "unexpected"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const (
	MsgServerGeneric = "An error occurred"
	MsgNetwork       = "Network error. Please check your connection."
	MsgUnexpected    = "An unexpected error occurred"
)

// Error is the single error shape every transport failure is normalized into.
// Message is meant to be shown to the user as-is.
type Error struct {
	Kind    Kind
	Status  int // HTTP status for KindServer, 0 otherwise
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 if err is not a transport error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func serverError(status int, detail string) *Error {
	msg := detail
	if msg == "" {
		msg = MsgServerGeneric
	}
	return &Error{Kind: KindServer, Status: status, Message: msg}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: MsgNetwork, Err: err}
}

func unexpectedError(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: MsgUnexpected, Err: err}
}
