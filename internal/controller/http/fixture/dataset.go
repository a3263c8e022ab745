// Package fixture serves canned Redfish resources over HTTP, standing in
// for a BMC in tests and demos.
package fixture

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed sample/*.json
var sample embed.FS

var (
	ErrMissingIdentity   = errors.New("resource has no @odata.id")
	ErrDuplicateIdentity = errors.New("duplicate @odata.id")
)

// Dataset maps a resource path to its JSON body. Keys carry no trailing
// slash.
type Dataset map[string]json.RawMessage

// Key normalizes a request or @odata.id path into a Dataset key.
func Key(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}

	return p
}

// LoadDataset reads every *.json file in the root of fsys, keyed by its
// @odata.id.
func LoadDataset(fsys fs.FS) (Dataset, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}

	data := make(Dataset, len(names))

	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}

		var head struct {
			ID string `json:"@odata.id"`
		}

		if err := json.Unmarshal(body, &head); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if head.ID == "" {
			return nil, fmt.Errorf("%s: %w", name, ErrMissingIdentity)
		}

		key := Key(head.ID)
		if _, dup := data[key]; dup {
			return nil, fmt.Errorf("%s: %w %s", name, ErrDuplicateIdentity, head.ID)
		}

		data[key] = json.RawMessage(body)
	}

	return data, nil
}

// SampleDataset returns a small two-chassis, two-system resource graph.
func SampleDataset() Dataset {
	sub, err := fs.Sub(sample, "sample")
	if err != nil {
		panic(err)
	}

	data, err := LoadDataset(sub)
	if err != nil {
		panic(err)
	}

	return data
}

// Paths returns the dataset keys under prefix in sorted order.
func (d Dataset) Paths(prefix string) []string {
	var out []string

	for k := range d {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}

	slices.Sort(out)

	return out
}
