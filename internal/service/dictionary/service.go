// Package dictionary talks to the upstream dictionary API (dictionaryapi.dev).
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
)

// Service errors. Every *UpstreamError matches ErrUpstream and the sentinel of its kind.
var (
	ErrUpstream  = errors.New("dictionary upstream error")
	ErrTransport = errors.New("dictionary upstream unreachable")
	ErrStatus    = errors.New("dictionary upstream returned an error status")
	ErrMalformed = errors.New("dictionary upstream returned a malformed body")
)

// ErrorKind classifies upstream failures for logs and metrics.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindStatus    ErrorKind = "status"
	KindMalformed ErrorKind = "malformed"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindStatus:
		return ErrStatus
	case KindMalformed:
		return ErrMalformed
	default:
		return ErrUpstream
	}
}

// UpstreamError describes a failed lookup.
type UpstreamError struct {
	Kind ErrorKind
	// Status is the upstream HTTP status for KindStatus, zero otherwise.
	Status int
	cause  error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ErrUpstream.Error()
	}
	msg := fmt.Sprintf("dictionary upstream error (kind=%s", e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" status=%d", e.Status)
	}
	msg += ")"
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Is matches ErrUpstream and the sentinel of the error kind.
func (e *UpstreamError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == ErrUpstream || target == e.Kind.sentinel()
}

// Unwrap exposes the underlying cause, e.g. context.DeadlineExceeded.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// KindOf returns the kind of an upstream error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind
	}
	return ""
}

// Service looks up dictionary entries for a word.
type Service interface {
	// Lookup returns the upstream JSON document for word, unchanged.
	Lookup(ctx context.Context, word string) (json.RawMessage, error)
}
