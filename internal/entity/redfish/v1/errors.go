package redfish

import (
	"errors"
	"fmt"
)

var (
	// ErrPathTooLong is returned when a resource path exceeds MaxPathLength.
	ErrPathTooLong = errors.New("resource path too long")

	// ErrMandatoryField is returned by a builder when an identity field is missing.
	ErrMandatoryField = errors.New("mandatory field missing")
)

// HTTPResponseError reports a GET that did not return 200 OK.
type HTTPResponseError struct {
	Service    ServiceName
	Path       string
	StatusCode int
}

func (e *HTTPResponseError) Error() string {
	if e.Service == "" {
		return fmt.Sprintf("GET %s returned HTTP %d", e.Path, e.StatusCode)
	}

	return fmt.Sprintf("GET %s (%s) returned HTTP %d", e.Path, e.Service, e.StatusCode)
}

// ParseError reports a document that lacks a required structural element.
type ParseError struct {
	Path    string
	Element string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Path, e.Element)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EnumError reports a present value that is not a keyword of a closed vocabulary.
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s keyword %q", e.Field, e.Value)
}

// ConfigError reports unusable connection parameters.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MemberError is the failure to read one member of a collection.
type MemberError struct {
	Path ResourcePath
	Err  error
}

func (e MemberError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e MemberError) Unwrap() error {
	return e.Err
}

// PartialError reports members that could not be read while their siblings
// were. It accompanies the partial collection, it does not replace it.
type PartialError struct {
	Service  ServiceName
	Failures []MemberError
}

func (e *PartialError) Error() string {
	switch len(e.Failures) {
	case 0:
		return fmt.Sprintf("%s: no member failed", e.Service)
	case 1:
		return fmt.Sprintf("%s: 1 member failed: %v", e.Service, e.Failures[0])
	}

	return fmt.Sprintf("%s: %d members failed, first: %v", e.Service, len(e.Failures), e.Failures[0])
}

// Unwrap exposes each member failure to errors.Is and errors.As.
func (e *PartialError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}

	return errs
}
