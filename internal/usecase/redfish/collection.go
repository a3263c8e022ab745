package redfish

import (
	"fmt"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

const keyMembers = "Members"

// EnumerateMembers returns the sorted, de-duplicated member paths of a
// collection document. Every member must be an object carrying exactly one
// odata.id; otherwise the whole collection is rejected with a *ParseError.
func EnumerateMembers(doc *document.Document, service redfishv1.ServiceName) ([]redfishv1.ResourcePath, error) {
	if !doc.OK() {
		return nil, &redfishv1.HTTPResponseError{Service: service, Path: doc.Path, StatusCode: doc.StatusCode}
	}

	if doc.Root == nil {
		return nil, &redfishv1.ParseError{Path: doc.Path, Element: "resource body"}
	}

	members := doc.Root.Property(keyMembers)
	if members == nil {
		return nil, &redfishv1.ParseError{Path: doc.Path, Element: keyMembers}
	}

	if members.Kind != document.KindCollection {
		return nil, &redfishv1.ParseError{
			Path:    doc.Path,
			Element: keyMembers,
			Err:     fmt.Errorf("expected collection, got %s", members.Kind),
		}
	}

	paths := make([]redfishv1.ResourcePath, 0, len(members.Collection))

	for i, m := range members.Collection {
		element := fmt.Sprintf("%s[%d]", keyMembers, i)

		if m.Kind != document.KindComplex {
			return nil, &redfishv1.ParseError{Path: doc.Path, Element: element, Err: fmt.Errorf("expected object, got %s", m.Kind)}
		}

		id, ok := singleIdentity(m.Complex)
		if !ok {
			return nil, &redfishv1.ParseError{
				Path:    doc.Path,
				Element: element,
				Err:     fmt.Errorf("expected one @%s, got %d", document.TermODataID, m.Complex.CountAnnotations(document.TermODataID)),
			}
		}

		p, err := redfishv1.NewResourcePath(id)
		if err != nil {
			return nil, &redfishv1.ParseError{Path: doc.Path, Element: element, Err: err}
		}

		paths = append(paths, p)
	}

	return redfishv1.SortedUnique(paths), nil
}
