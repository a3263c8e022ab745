package redfish

import (
	"fmt"
	"strings"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

// Reserved keys of the Redfish resource vocabulary.
const (
	keyLinks        = "Links"
	keyOem          = "Oem"
	keyTarget       = "target"
	keyHealth       = "Health"
	keyState        = "State"
	keyHealthRollup = "HealthRollup"
	// Spelling used by some early services.
	keyHealthRollUp = "HealthRollUp"
)

// Reader exposes tolerant accessors over one fetched document. Absent
// properties read as ("", false); only enum violations are errors.
type Reader struct {
	doc   *document.Document
	vocab *redfishv1.Vocabulary
}

// NewReader wraps doc. It fails with *HTTPResponseError unless the document
// was fetched with status 200.
func NewReader(doc *document.Document, service redfishv1.ServiceName, vocab *redfishv1.Vocabulary) (*Reader, error) {
	if !doc.OK() {
		return nil, &redfishv1.HTTPResponseError{Service: service, Path: doc.Path, StatusCode: doc.StatusCode}
	}

	if doc.Root == nil {
		return nil, &redfishv1.ParseError{Path: doc.Path, Element: "resource body"}
	}

	return &Reader{doc: doc, vocab: vocab}, nil
}

// Path returns the path the document was fetched from.
func (r *Reader) Path() string {
	return r.doc.Path
}

// OptionalProperty returns a top-level primitive property.
func (r *Reader) OptionalProperty(key string) (string, bool) {
	return primitive(r.doc.Root.Property(key))
}

// ComplexValue returns primaryKey.subKey when both levels are present.
func (r *Reader) ComplexValue(primaryKey, subKey string) (string, bool) {
	return r.nestedValue(primaryKey, subKey)
}

func (r *Reader) nestedValue(keys ...string) (string, bool) {
	return primitive(r.doc.Root.Lookup(keys...))
}

// Annotation returns the odata.id of the object stored under key, as in
// "Thermal": {"@odata.id": "..."}. A "key@odata.id" annotation is used when
// the object form is absent.
func (r *Reader) Annotation(key string) (string, bool) {
	p := r.doc.Root.Property(key)
	if p == nil {
		return "", false
	}

	if p.Kind == document.KindComplex {
		if ids := p.Complex.AnnotationValues(document.TermODataID); len(ids) > 0 {
			return ids[0], true
		}
	}

	if ids := p.AnnotationValues(document.TermODataID); len(ids) > 0 {
		return ids[0], true
	}

	return "", false
}

// LinkSingle returns Links.key when it is an object carrying exactly one
// identity annotation.
func (r *Reader) LinkSingle(key string) (string, bool) {
	p := r.doc.Root.Lookup(keyLinks, key)
	if p == nil || p.Kind != document.KindComplex {
		return "", false
	}

	return singleIdentity(p.Complex)
}

// LinkArray returns the identity of every Links.key entry that carries
// exactly one identity annotation. Other entries are skipped.
func (r *Reader) LinkArray(key string) []string {
	p := r.doc.Root.Lookup(keyLinks, key)
	if p == nil || p.Kind != document.KindCollection {
		return nil
	}

	var out []string

	for _, item := range p.Collection {
		if item.Kind != document.KindComplex {
			continue
		}

		if id, ok := singleIdentity(item.Complex); ok {
			out = append(out, id)
		}
	}

	return out
}

// Actions returns every action below key, including vendor actions nested in
// Oem objects. An action is any object with a "target" member; its name is
// the property name it was found under. Entries whose target is not a usable
// path are skipped. The result is ordered by name, then target.
func (r *Reader) Actions(key string) []redfishv1.Action {
	p := r.doc.Root.Property(key)
	if p == nil || p.Kind != document.KindComplex {
		return nil
	}

	var out []redfishv1.Action

	collectActions(p.Complex, &out)

	return redfishv1.SortActions(out)
}

func collectActions(obj *document.Object, out *[]redfishv1.Action) {
	for _, p := range obj.Properties {
		if p.Kind != document.KindComplex {
			continue
		}

		if target, ok := primitive(p.Complex.Property(keyTarget)); ok {
			if path, err := redfishv1.NewResourcePath(target); err == nil && target != "" {
				*out = append(*out, redfishv1.Action{Name: p.Name, Target: path})
			}

			continue
		}

		collectActions(p.Complex, out)
	}
}

// OperatingStatus reads Health, State and HealthRollup from the object at
// keys (usually just "Status"). It returns nil when all three are absent and
// an *EnumError when a present value is not a known keyword.
func (r *Reader) OperatingStatus(keys ...string) (*redfishv1.OperatingStatus, error) {
	health, _ := r.nestedValue(append(keys, keyHealth)...)
	state, _ := r.nestedValue(append(keys, keyState)...)

	rollup, ok := r.nestedValue(append(keys, keyHealthRollup)...)
	if !ok {
		rollup, _ = r.nestedValue(append(keys, keyHealthRollUp)...)
	}

	status, err := redfishv1.NewOperatingStatus(r.vocab, health, rollup, state)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.doc.Path, strings.Join(keys, "."), err)
	}

	return status, nil
}

func primitive(p *document.Property) (string, bool) {
	if p == nil || p.Kind != document.KindPrimitive {
		return "", false
	}

	return p.Primitive, true
}

// singleIdentity returns the object's odata.id when it has exactly one.
func singleIdentity(obj *document.Object) (string, bool) {
	if obj.CountAnnotations(document.TermODataID) != 1 {
		return "", false
	}

	ids := obj.AnnotationValues(document.TermODataID)
	if len(ids) != 1 {
		return "", false
	}

	return ids[0], true
}
