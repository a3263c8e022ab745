// Package redfish defines the typed Redfish entities assembled from a server's
// resource graph, along with the path, vocabulary, and error types they share.
package redfish

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxPathLength bounds the length of a ResourcePath in characters.
const MaxPathLength = 250

// ResourcePath is a validated server-relative or absolute location of a
// Redfish resource. The zero value is the empty path.
type ResourcePath struct {
	value string
}

// NewResourcePath validates s and returns it as a path.
func NewResourcePath(s string) (ResourcePath, error) {
	if n := utf8.RuneCountInString(s); n > MaxPathLength {
		return ResourcePath{}, fmt.Errorf("%w: %d > %d characters", ErrPathTooLong, n, MaxPathLength)
	}

	return ResourcePath{value: s}, nil
}

// MustResourcePath is NewResourcePath for compile-time constants. It panics
// on an over-long input.
func MustResourcePath(s string) ResourcePath {
	p, err := NewResourcePath(s)
	if err != nil {
		panic(err)
	}

	return p
}

func (p ResourcePath) String() string {
	return p.value
}

// IsZero reports whether p is the empty path.
func (p ResourcePath) IsZero() bool {
	return p.value == ""
}

// Compare orders paths by byte-wise string comparison.
func (p ResourcePath) Compare(o ResourcePath) int {
	return strings.Compare(p.value, o.value)
}

// MarshalText -.
func (p ResourcePath) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText -.
func (p *ResourcePath) UnmarshalText(text []byte) error {
	v, err := NewResourcePath(string(text))
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// SortedUnique returns a sorted copy of paths with duplicates removed.
// It returns nil for an empty input.
func SortedUnique(paths []ResourcePath) []ResourcePath {
	if len(paths) == 0 {
		return nil
	}

	out := slices.Clone(paths)
	slices.SortFunc(out, ResourcePath.Compare)

	return slices.Compact(out)
}
