// Package document holds the generic named-property tree a Redfish resource
// is decoded into before any typed reading happens.
//
// Unlike map-based decoding, the tree keeps property order, duplicate keys,
// and OData annotations ("@odata.id", "Members@odata.count") as first-class
// nodes, so readers can tell "absent" from "malformed".
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// TermODataID is the identity annotation term.
const TermODataID = "odata.id"

var (
	// ErrNotObject is returned when a resource body is valid JSON but not an object.
	ErrNotObject = errors.New("resource body is not a JSON object")

	// ErrTrailingData is returned when a resource body holds more than one JSON value.
	ErrTrailingData = errors.New("trailing data after resource object")
)

// Kind discriminates property values.
type Kind int

const (
	KindNull Kind = iota
	KindPrimitive
	KindComplex
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPrimitive:
		return "primitive"
	case KindComplex:
		return "complex"
	case KindCollection:
		return "collection"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Annotation is an OData annotation such as odata.id or odata.count. Value is
// the textual form of a primitive annotation value; Primitive is false when
// the annotation carried an object or array.
type Annotation struct {
	Term      string
	Value     string
	Primitive bool
}

// Property is one named value. Collection items are unnamed properties.
type Property struct {
	Name        string
	Kind        Kind
	Primitive   string
	Complex     *Object
	Collection  []*Property
	Annotations []Annotation
}

// Object is a JSON object: its properties in wire order plus the annotations
// written directly inside it.
type Object struct {
	Properties  []*Property
	Annotations []Annotation
}

// Document is one fetched resource.
type Document struct {
	Path       string
	StatusCode int
	Root       *Object
}

// OK reports whether the fetch returned 200.
func (d *Document) OK() bool {
	return d.StatusCode == http.StatusOK
}

// Property returns the first property called name, or nil.
func (o *Object) Property(name string) *Property {
	if o == nil {
		return nil
	}

	for _, p := range o.Properties {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// Lookup walks nested complex properties by name and returns the last one,
// or nil when any step is missing or not complex.
func (o *Object) Lookup(names ...string) *Property {
	cur := o

	var p *Property

	for i, name := range names {
		p = cur.Property(name)
		if p == nil {
			return nil
		}

		if i < len(names)-1 {
			if p.Kind != KindComplex {
				return nil
			}

			cur = p.Complex
		}
	}

	return p
}

// AnnotationValues returns every primitive value annotated with term, in
// wire order. Non-primitive values are skipped.
func (o *Object) AnnotationValues(term string) []string {
	if o == nil {
		return nil
	}

	return annotationValues(o.Annotations, term)
}

// CountAnnotations returns how many annotations, primitive or not, use term.
func (o *Object) CountAnnotations(term string) int {
	if o == nil {
		return 0
	}

	n := 0

	for _, a := range o.Annotations {
		if a.Term == term {
			n++
		}
	}

	return n
}

// AnnotationValues returns the primitive values of the property's own
// "Name@term" annotations.
func (p *Property) AnnotationValues(term string) []string {
	if p == nil {
		return nil
	}

	return annotationValues(p.Annotations, term)
}

func annotationValues(list []Annotation, term string) []string {
	var out []string

	for _, a := range list {
		if a.Term == term && a.Primitive {
			out = append(out, a.Value)
		}
	}

	return out
}

// Parse decodes body as the resource fetched from path with the given HTTP
// status. A non-200 document keeps a nil Root and is not decoded.
func Parse(path string, statusCode int, body []byte) (*Document, error) {
	doc := &Document{Path: path, StatusCode: statusCode}

	if statusCode != http.StatusOK {
		return doc, nil
	}

	root, err := Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	doc.Root = root

	return doc, nil
}

// Decode reads one JSON object from r into a tree.
func Decode(r io.Reader) (*Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	obj, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return obj, nil
}

// decodeObject reads members until the closing brace. The opening brace has
// already been consumed.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{}
	pending := map[string][]Annotation{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		val, err := decodeValue(dec, key, valTok)
		if err != nil {
			return nil, err
		}

		at := strings.IndexByte(key, '@')

		switch {
		case at < 0:
			obj.Properties = append(obj.Properties, val)
		case at == 0:
			obj.Annotations = append(obj.Annotations, toAnnotation(key[1:], val))
		default:
			name := key[:at]
			pending[name] = append(pending[name], toAnnotation(key[at+1:], val))
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	for _, p := range obj.Properties {
		if anns, ok := pending[p.Name]; ok {
			p.Annotations = append(p.Annotations, anns...)
			delete(pending, p.Name)
		}
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]*Property, error) {
	items := []*Property{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		item, err := decodeValue(dec, "", tok)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return items, nil
}

func decodeValue(dec *json.Decoder, name string, tok json.Token) (*Property, error) {
	p := &Property{Name: name}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}

			p.Kind = KindComplex
			p.Complex = obj
		case '[':
			items, err := decodeArray(dec)
			if err != nil {
				return nil, err
			}

			p.Kind = KindCollection
			p.Collection = items
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		p.Kind = KindPrimitive
		p.Primitive = t
	case json.Number:
		p.Kind = KindPrimitive
		p.Primitive = t.String()
	case bool:
		p.Kind = KindPrimitive
		p.Primitive = strconv.FormatBool(t)
	case nil:
		p.Kind = KindNull
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}

	return p, nil
}

func toAnnotation(term string, val *Property) Annotation {
	return Annotation{
		Term:      term,
		Value:     val.Primitive,
		Primitive: val.Kind == KindPrimitive,
	}
}
