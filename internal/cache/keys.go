package cache

import "fmt"

// Cache key prefixes.
const (
	PrefixDocument = "doc:"
	PrefixRoot     = "root:"
)

// MakeDocumentKey creates a cache key for the document at an absolute URL.
func MakeDocumentKey(url string) string {
	return fmt.Sprintf("%s%s", PrefixDocument, url)
}

// MakeRootKey creates a cache key for a service root document.
func MakeRootKey(url string) string {
	return fmt.Sprintf("%s%s", PrefixRoot, url)
}
