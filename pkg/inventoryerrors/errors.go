// Package inventoryerrors carries call-site context through wrapped errors.
package inventoryerrors

import "fmt"

// InternalError records where an error was wrapped. Message is the
// user-facing summary; OriginalError keeps the cause for errors.Is/As.
type InternalError struct {
	File          string
	Function      string
	Call          string
	Message       string
	OriginalError error
}

// CreateInventoryError returns an InternalError bound to a source file or component.
func CreateInventoryError(file string) InternalError {
	return InternalError{
		File:    file,
		Message: "internal error",
	}
}

func (e InternalError) Error() string {
	if e.OriginalError == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s - %s: %v", e.File, e.Function, e.Call, e.OriginalError)
}

// Unwrap -.
func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// Wrap stores the failing call and its function and returns the receiver as an error.
func (e *InternalError) Wrap(call, function string, err error) error {
	e.Call = call
	e.Function = function
	e.OriginalError = err

	return e
}

// FriendlyMessage returns the message safe to show outside the process.
func (e InternalError) FriendlyMessage() string {
	return e.Message
}

// NotFoundError -.
type NotFoundError struct {
	Inventory InternalError
}

func (e NotFoundError) Error() string {
	return e.Inventory.Error()
}

func (e NotFoundError) Unwrap() error {
	return e.Inventory.OriginalError
}

// Wrap -.
func (e NotFoundError) Wrap(call, function string, err error) error {
	_ = e.Inventory.Wrap(call, function, err)
	e.Inventory.Message = "requested resource not found"

	return e
}

// DatabaseError -.
type DatabaseError struct {
	Inventory InternalError
}

func (e DatabaseError) Error() string {
	return e.Inventory.Error()
}

func (e DatabaseError) Unwrap() error {
	return e.Inventory.OriginalError
}

// Wrap -.
func (e DatabaseError) Wrap(call, function string, err error) error {
	_ = e.Inventory.Wrap(call, function, err)
	e.Inventory.Message = "database operation failed"

	return e
}

// SecretStoreError -.
type SecretStoreError struct {
	Inventory InternalError
}

func (e SecretStoreError) Error() string {
	return e.Inventory.Error()
}

func (e SecretStoreError) Unwrap() error {
	return e.Inventory.OriginalError
}

// Wrap -.
func (e SecretStoreError) Wrap(call, function string, err error) error {
	_ = e.Inventory.Wrap(call, function, err)
	e.Inventory.Message = "secret store operation failed"

	return e
}
