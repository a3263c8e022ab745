package redfish

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

// extractKind selects the Reader accessor used for a field.
type extractKind int

const (
	extractProperty extractKind = iota
	extractComplex
	extractAnnotation
	extractLinkSingle
	extractLinkArray
	extractActions
	extractStatus
)

// fieldValue carries whatever an accessor produced; only the member that
// matches the field's kind is set.
type fieldValue struct {
	text    string
	path    redfishv1.ResourcePath
	paths   []redfishv1.ResourcePath
	actions []redfishv1.Action
	status  *redfishv1.OperatingStatus
}

// field describes one wire property of entity builder B. Key is dotted: the
// first element is the top-level property, "Links.X" names a link, and
// further elements select nested members.
type field[B any] struct {
	key  string
	kind extractKind
	set  func(b B, v fieldValue) error
}

func (f field[B]) keys() []string {
	return strings.Split(f.key, ".")
}

// sortFields returns fields in key order.
func sortFields[B any](fields []field[B]) []field[B] {
	out := slices.Clone(fields)
	slices.SortStableFunc(out, func(a, b field[B]) int { return cmp.Compare(a.key, b.key) })

	return out
}

// readFields applies every field present in r to b, in table order.
func readFields[B any](r *Reader, b B, fields []field[B]) error {
	for _, f := range fields {
		v, ok, err := extract(r, f)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		if err := f.set(b, v); err != nil {
			return fmt.Errorf("%s %s: %w", r.Path(), f.key, err)
		}
	}

	return nil
}

func extract[B any](r *Reader, f field[B]) (fieldValue, bool, error) {
	keys := f.keys()

	switch f.kind {
	case extractProperty:
		s, ok := r.OptionalProperty(f.key)

		return fieldValue{text: s}, ok, nil
	case extractComplex:
		s, ok := r.nestedValue(keys...)

		return fieldValue{text: s}, ok, nil
	case extractAnnotation:
		s, ok := r.Annotation(f.key)
		if !ok {
			return fieldValue{}, false, nil
		}

		p, ok := linkPath(s)

		return fieldValue{path: p}, ok, nil
	case extractLinkSingle:
		s, ok := r.LinkSingle(linkName(keys))
		if !ok {
			return fieldValue{}, false, nil
		}

		p, ok := linkPath(s)

		return fieldValue{path: p}, ok, nil
	case extractLinkArray:
		raw := r.LinkArray(linkName(keys))
		if raw == nil {
			return fieldValue{}, false, nil
		}

		paths := make([]redfishv1.ResourcePath, 0, len(raw))

		for _, s := range raw {
			if p, ok := linkPath(s); ok {
				paths = append(paths, p)
			}
		}

		return fieldValue{paths: paths}, true, nil
	case extractActions:
		a := r.Actions(f.key)

		return fieldValue{actions: a}, a != nil, nil
	case extractStatus:
		s, err := r.OperatingStatus(keys...)
		if err != nil {
			return fieldValue{}, false, err
		}

		return fieldValue{status: s}, s != nil, nil
	}

	return fieldValue{}, false, fmt.Errorf("field %s: unknown extract kind %d", f.key, f.kind)
}

func linkName(keys []string) string {
	if len(keys) > 1 && keys[0] == keyLinks {
		return keys[1]
	}

	return keys[0]
}

// linkPath drops empty and over-long link values.
func linkPath(s string) (redfishv1.ResourcePath, bool) {
	if s == "" {
		return redfishv1.ResourcePath{}, false
	}

	p, err := redfishv1.NewResourcePath(s)
	if err != nil {
		return redfishv1.ResourcePath{}, false
	}

	return p, true
}

func text[B any](set func(B, string)) func(B, fieldValue) error {
	return func(b B, v fieldValue) error {
		set(b, v.text)

		return nil
	}
}

func keyword[B any](set func(B, string) error) func(B, fieldValue) error {
	return func(b B, v fieldValue) error {
		return set(b, v.text)
	}
}

func link[B any](set func(B, redfishv1.ResourcePath)) func(B, fieldValue) error {
	return func(b B, v fieldValue) error {
		set(b, v.path)

		return nil
	}
}

func links[B any](set func(B, []redfishv1.ResourcePath)) func(B, fieldValue) error {
	return func(b B, v fieldValue) error {
		set(b, v.paths)

		return nil
	}
}

func actions[B any](set func(B, []redfishv1.Action)) func(B, fieldValue) error {
	return func(b B, v fieldValue) error {
		set(b, v.actions)

		return nil
	}
}

func status[B any](set func(B, *redfishv1.OperatingStatus)) func(B, fieldValue) error {
	return func(b B, v fieldValue) error {
		set(b, v.status)

		return nil
	}
}
