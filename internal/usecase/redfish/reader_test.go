package redfish_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/redfish"
)

func TestNewReaderRejectsNonOK(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse("/redfish/v1/Chassis/7", http.StatusNotFound, nil)
	require.NoError(t, err)

	r, err := redfish.NewReader(doc, redfishv1.ServiceChassis, redfishv1.DefaultVocabulary())
	require.Nil(t, r)

	var httpErr *redfishv1.HTTPResponseError

	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, redfishv1.ServiceChassis, httpErr.Service)
	assert.Equal(t, "/redfish/v1/Chassis/7", httpErr.Path)
}

func TestReaderProperties(t *testing.T) {
	t.Parallel()

	r := newReader(t, `{
		"Id": "1",
		"Name": null,
		"Boot": {"BootSourceOverrideTarget": "Pxe"},
		"Thermal": {"@odata.id": "/redfish/v1/Chassis/1/Thermal"},
		"Location": {"Rack": "R1"}
	}`)

	v, ok := r.OptionalProperty("Id")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = r.OptionalProperty("Name")
	assert.False(t, ok, "null reads as absent")

	_, ok = r.OptionalProperty("Model")
	assert.False(t, ok)

	v, ok = r.ComplexValue("Boot", "BootSourceOverrideTarget")
	assert.True(t, ok)
	assert.Equal(t, "Pxe", v)

	_, ok = r.ComplexValue("Boot", "BootSourceOverrideEnabled")
	assert.False(t, ok)

	_, ok = r.ComplexValue("Missing", "BootSourceOverrideEnabled")
	assert.False(t, ok)

	v, ok = r.Annotation("Thermal")
	assert.True(t, ok)
	assert.Equal(t, "/redfish/v1/Chassis/1/Thermal", v)

	_, ok = r.Annotation("Location")
	assert.False(t, ok)

	_, ok = r.Annotation("LogServices")
	assert.False(t, ok)
}

func TestReaderLinks(t *testing.T) {
	t.Parallel()

	r := newReader(t, `{
		"Links": {
			"ContainedBy": {"@odata.id": "/redfish/v1/Chassis/Rack"},
			"ManagersInChassis": {"@odata.id": "/a", "@odata.id": "/b"},
			"ComputerSystems": [
				{"@odata.id": "/redfish/v1/Systems/2"},
				{},
				{"@odata.id": "/redfish/v1/Systems/x", "@odata.id": "/redfish/v1/Systems/y"},
				"/redfish/v1/Systems/3",
				{"@odata.id": "/redfish/v1/Systems/1", "Oem": {}},
				null
			],
			"CooledBy": {"@odata.id": "/not/an/array"}
		}
	}`)

	v, ok := r.LinkSingle("ContainedBy")
	assert.True(t, ok)
	assert.Equal(t, "/redfish/v1/Chassis/Rack", v)

	_, ok = r.LinkSingle("ManagersInChassis")
	assert.False(t, ok, "two identities are ambiguous")

	_, ok = r.LinkSingle("PoweredBy")
	assert.False(t, ok)

	assert.Equal(t, []string{"/redfish/v1/Systems/2", "/redfish/v1/Systems/1"}, r.LinkArray("ComputerSystems"))
	assert.Nil(t, r.LinkArray("CooledBy"))
	assert.Nil(t, r.LinkArray("PoweredBy"))
}

func TestReaderLinksWithoutLinksObject(t *testing.T) {
	t.Parallel()

	r := newReader(t, `{"Links": "none"}`)

	_, ok := r.LinkSingle("ContainedBy")
	assert.False(t, ok)
	assert.Nil(t, r.LinkArray("ComputerSystems"))
}

func TestReaderActions(t *testing.T) {
	t.Parallel()

	r := newReader(t, `{
		"Actions": {
			"#Chassis.Reset": {
				"target": "/redfish/v1/Chassis/1/Actions/Chassis.Reset",
				"ResetType@Redfish.AllowableValues": ["On", "ForceOff"]
			},
			"Oem": {
				"#Contoso.Blink": {"target": "/redfish/v1/Chassis/1/Actions/Oem/Contoso.Blink"},
				"Contoso": {
					"#Contoso.Audit": {"target": "/redfish/v1/Chassis/1/Actions/Oem/Contoso.Audit"},
					"#Contoso.Broken": {"target": "`+strings.Repeat("x", redfishv1.MaxPathLength+1)+`"},
					"#Contoso.NoTarget": {"title": "nothing"}
				}
			},
			"#Chassis.Alpha": {"target": "/redfish/v1/Chassis/1/Actions/Chassis.Alpha"}
		}
	}`)

	got := r.Actions("Actions")

	want := []redfishv1.Action{
		{Name: "#Chassis.Alpha", Target: redfishv1.MustResourcePath("/redfish/v1/Chassis/1/Actions/Chassis.Alpha")},
		{Name: "#Chassis.Reset", Target: redfishv1.MustResourcePath("/redfish/v1/Chassis/1/Actions/Chassis.Reset")},
		{Name: "#Contoso.Audit", Target: redfishv1.MustResourcePath("/redfish/v1/Chassis/1/Actions/Oem/Contoso.Audit")},
		{Name: "#Contoso.Blink", Target: redfishv1.MustResourcePath("/redfish/v1/Chassis/1/Actions/Oem/Contoso.Blink")},
	}

	assert.Equal(t, want, got)
	assert.Nil(t, r.Actions("Missing"))
}

func TestReaderOperatingStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		keys []string
		res  *redfishv1.OperatingStatus
		err  error
	}{
		{
			name: "all absent",
			body: `{"Status": {}}`,
			keys: []string{"Status"},
		},
		{
			name: "object absent",
			body: `{}`,
			keys: []string{"Status"},
		},
		{
			name: "empty keywords count as absent",
			body: `{"Status": {"Health": "", "State": ""}}`,
			keys: []string{"Status"},
		},
		{
			name: "state only",
			body: `{"Status": {"State": "Enabled"}}`,
			keys: []string{"Status"},
			res:  &redfishv1.OperatingStatus{State: redfishv1.StateEnabled},
		},
		{
			name: "health only",
			body: `{"Status": {"Health": "Warning"}}`,
			keys: []string{"Status"},
			res:  &redfishv1.OperatingStatus{Health: redfishv1.HealthWarning},
		},
		{
			name: "rollup only",
			body: `{"Status": {"HealthRollup": "Critical"}}`,
			keys: []string{"Status"},
			res:  &redfishv1.OperatingStatus{HealthRollup: redfishv1.HealthCritical},
		},
		{
			name: "alternate rollup spelling",
			body: `{"Status": {"HealthRollUp": "OK"}}`,
			keys: []string{"Status"},
			res:  &redfishv1.OperatingStatus{HealthRollup: redfishv1.HealthOK},
		},
		{
			name: "nested status",
			body: `{"ProcessorSummary": {"Count": 2, "Status": {"Health": "OK", "State": "Enabled", "HealthRollup": "OK"}}}`,
			keys: []string{"ProcessorSummary", "Status"},
			res: &redfishv1.OperatingStatus{
				Health:       redfishv1.HealthOK,
				HealthRollup: redfishv1.HealthOK,
				State:        redfishv1.StateEnabled,
			},
		},
		{
			name: "unknown health",
			body: `{"Status": {"Health": "Fine"}}`,
			keys: []string{"Status"},
			err:  &redfishv1.EnumError{Field: "Health", Value: "Fine"},
		},
		{
			name: "unknown state",
			body: `{"Status": {"Health": "OK", "State": "Sleeping"}}`,
			keys: []string{"Status"},
			err:  &redfishv1.EnumError{Field: "State", Value: "Sleeping"},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := newReader(t, tc.body)

			res, err := r.OperatingStatus(tc.keys...)
			if tc.err != nil {
				var enumErr *redfishv1.EnumError

				require.True(t, errors.As(err, &enumErr))
				assert.Equal(t, tc.err, enumErr)
				assert.Nil(t, res)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.res, res)
		})
	}
}
