package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind classifies why a fetch did not produce an Item
type FailureKind int

const (
	// NetworkFailure covers connection errors and timeouts
	NetworkFailure FailureKind = iota + 1
	// ResponseFailure covers non-success HTTP statuses, including not found
	ResponseFailure
	// DecodeFailure covers malformed or incomplete payloads
	DecodeFailure
)

func (k FailureKind) String() string {
	switch k {
	case NetworkFailure:
		return "network"
	case ResponseFailure:
		return "response"
	case DecodeFailure:
		return "decode"
	default:
		return "unknown"
	}
}

// Failure is returned for every unsuccessful request
type Failure struct {
	Kind   FailureKind
	URL    string
	Status int // set for ResponseFailure
	Err    error
}

func (f *Failure) Error() string {
	if f.Kind == ResponseFailure {
		return fmt.Sprintf("%s failure: %s: http %d", f.Kind, f.URL, f.Status)
	}
	return fmt.Sprintf("%s failure: %s: %v", f.Kind, f.URL, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// KindOf returns the failure kind carried by err, or 0 if err is not a Failure
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}

// IsNotFound reports whether err is an upstream 404, which is how the
// service answers identifiers past the last known creature.
func IsNotFound(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == ResponseFailure && f.Status == http.StatusNotFound
}
