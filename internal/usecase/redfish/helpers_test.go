package redfish_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/redfish"
)

func parse(t *testing.T, path, body string) *document.Document {
	t.Helper()

	doc, err := document.Parse(path, http.StatusOK, []byte(body))
	require.NoError(t, err)

	return doc
}

func newReader(t *testing.T, body string) *redfish.Reader {
	t.Helper()

	r, err := redfish.NewReader(parse(t, "/redfish/v1/Chassis/1", body), redfishv1.ServiceChassis, redfishv1.DefaultVocabulary())
	require.NoError(t, err)

	return r
}

func paths(ss ...string) []redfishv1.ResourcePath {
	out := make([]redfishv1.ResourcePath, 0, len(ss))
	for _, s := range ss {
		out = append(out, redfishv1.MustResourcePath(s))
	}

	return out
}
