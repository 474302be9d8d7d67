package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies an error so transports can map it to a response.
type Kind uint8

const (
	Other Kind = iota
	Invalid
	NotFound
	Unavailable
	Internal
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not found"
	case Unavailable:
		return "unavailable"
	case Internal:
		return "internal"
	default:
		return "other"
	}
}

// Error is the application error carrying a Kind, a message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a new application error.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in the chain, Other when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// Is and New forward to the standard library so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

func New(text string) error { return errors.New(text) }

// HTTPStatus maps an error to the status code a handler should reply with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ValidationErrors collects per-field problems.
type ValidationErrors struct {
	fields map[string][]string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

// Add records a problem for the field.
func (v *ValidationErrors) Add(field, msg string) {
	v.fields[field] = append(v.fields[field], msg)
}

// Len is the number of fields that failed.
func (v *ValidationErrors) Len() int {
	return len(v.fields)
}

// Err returns nil when nothing was added.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, strings.Join(v.fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}
