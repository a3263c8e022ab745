package redfish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/redfish"
)

const sampleChassis = `{
	"@odata.id": "/redfish/v1/Chassis/1U",
	"Id": "1U",
	"Name": "Computer System Chassis",
	"ChassisType": "RackMount",
	"Manufacturer": "ManufacturerName",
	"Model": "ProductModelName",
	"SKU": "",
	"SerialNumber": "2M220100SL",
	"PartNumber": "",
	"AssetTag": "CustomerWritableThingy",
	"IndicatorLED": "Lit",
	"Status": {"State": "Enabled", "Health": "OK"},
	"Thermal": {"@odata.id": "/redfish/v1/Chassis/1U/Thermal"},
	"Power": {"@odata.id": "/redfish/v1/Chassis/1U/Power"},
	"Links": {
		"ComputerSystems": [
			{"@odata.id": "/redfish/v1/Systems/437XR1138R2"},
			{"@odata.id": "/redfish/v1/Systems/437XR1138R2"},
			{"@odata.id": "/redfish/v1/Systems/0001"}
		],
		"ManagedBy": [{"@odata.id": "/redfish/v1/Managers/BMC"}],
		"ManagersInChassis": [{"@odata.id": "/redfish/v1/Managers/BMC"}],
		"ContainedBy": {"@odata.id": "/redfish/v1/Chassis/Rack1"},
		"CooledBy": [{}, {"@odata.id": "/redfish/v1/Chassis/1U/Thermal#/Fans/0"}]
	},
	"Actions": {
		"#Chassis.Reset": {"target": "/redfish/v1/Chassis/1U/Actions/Chassis.Reset"}
	}
}`

const sampleSystem = `{
	"@odata.id": "/redfish/v1/Systems/437XR1138R2",
	"Id": "437XR1138R2",
	"Name": "WebFrontEnd483",
	"SystemType": "Physical",
	"AssetTag": "Chicago-45Z-2381",
	"Manufacturer": "Contoso",
	"Model": "3500RX",
	"SKU": "8675309",
	"SerialNumber": "437XR1138R2",
	"PartNumber": "224071-J23",
	"Description": "Web Front End node",
	"UUID": "38947555-7742-3448-3784-823347823834",
	"HostName": "web483",
	"Status": {"State": "Enabled", "Health": "OK", "HealthRollup": "OK"},
	"PowerState": "On",
	"Boot": {
		"BootSourceOverrideEnabled": "Once",
		"BootSourceOverrideTarget": "UefiTarget",
		"UefiTargetBootSourceOverride": "/0x31/0x33/0x01/0x01",
		"BootSourceOverrideTarget@Redfish.AllowableValues": ["None", "Pxe"]
	},
	"BiosVersion": "P79 v1.33 (02/28/2015)",
	"ProcessorSummary": {"Count": 2, "Status": {"State": "Enabled", "Health": "OK", "HealthRollup": "OK"}},
	"MemorySummary": {"TotalSystemMemoryGiB": 96, "Status": {"State": "Enabled", "Health": "Warning"}},
	"LogServices": {"@odata.id": "/redfish/v1/Systems/437XR1138R2/LogServices"},
	"Links": {
		"Chassis": [{"@odata.id": "/redfish/v1/Chassis/1U"}],
		"ManagedBy": [{"@odata.id": "/redfish/v1/Managers/BMC"}]
	},
	"Actions": {
		"#ComputerSystem.Reset": {
			"target": "/redfish/v1/Systems/437XR1138R2/Actions/ComputerSystem.Reset",
			"ResetType@Redfish.AllowableValues": ["On", "ForceOff", "GracefulRestart"]
		},
		"Oem": {"#Contoso.Reset": {"target": "/redfish/v1/Systems/437XR1138R2/Oem/Contoso/Actions/Contoso.Reset"}}
	}
}`

func TestReadChassis(t *testing.T) {
	t.Parallel()

	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())

	c, err := reader.ReadChassis(parse(t, "/redfish/v1/Chassis/1U", sampleChassis))
	require.NoError(t, err)

	assert.Equal(t, redfishv1.MustResourcePath("/redfish/v1/Chassis/1U"), c.Path)
	assert.Equal(t, "1U", c.ID)
	assert.Equal(t, "Computer System Chassis", c.Name)
	assert.Equal(t, redfishv1.ChassisTypeRackMount, c.ChassisType)
	assert.Equal(t, redfishv1.IndicatorLEDLit, c.IndicatorLED)
	assert.Equal(t, "2M220100SL", c.SerialNumber)
	assert.Empty(t, c.SKU)
	assert.Equal(t, &redfishv1.OperatingStatus{Health: redfishv1.HealthOK, State: redfishv1.StateEnabled}, c.Status)
	assert.Equal(t, paths("/redfish/v1/Systems/0001", "/redfish/v1/Systems/437XR1138R2"), c.ComputerSystems)
	assert.Equal(t, paths("/redfish/v1/Managers/BMC"), c.ManagedBy)
	assert.Equal(t, paths("/redfish/v1/Chassis/1U/Thermal#/Fans/0"), c.CooledBy)
	assert.Nil(t, c.PoweredBy)
	assert.Nil(t, c.Contains)
	assert.Equal(t, "/redfish/v1/Chassis/Rack1", c.ContainedBy.String())
	assert.Equal(t, "/redfish/v1/Chassis/1U/Thermal", c.Thermal.String())
	assert.Equal(t, "/redfish/v1/Chassis/1U/Power", c.Power.String())
	assert.True(t, c.LogServices.IsZero())
	assert.Equal(t, []redfishv1.Action{
		{Name: "#Chassis.Reset", Target: redfishv1.MustResourcePath("/redfish/v1/Chassis/1U/Actions/Chassis.Reset")},
	}, c.Actions)
}

func TestReadChassisMinimal(t *testing.T) {
	t.Parallel()

	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())

	c, err := reader.ReadChassis(parse(t, "/redfish/v1/Chassis/2", `{"ChassisType": "RackMount"}`))
	require.NoError(t, err)

	want := redfishv1.Chassis{
		Path:        redfishv1.MustResourcePath("/redfish/v1/Chassis/2"),
		ChassisType: redfishv1.ChassisTypeRackMount,
	}

	assert.Equal(t, want, c)
}

func TestReadChassisRejectsUnknownKeywords(t *testing.T) {
	t.Parallel()

	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())

	for field, body := range map[string]string{
		"ChassisType":  `{"ChassisType": "Spaceship"}`,
		"IndicatorLED": `{"IndicatorLED": "Flashing"}`,
		"State":        `{"Status": {"State": "Asleep"}}`,
	} {
		_, err := reader.ReadChassis(parse(t, "/redfish/v1/Chassis/1", body))

		var enumErr *redfishv1.EnumError

		require.ErrorAs(t, err, &enumErr, field)
		assert.Equal(t, field, enumErr.Field)
	}
}

func TestReadComputerSystem(t *testing.T) {
	t.Parallel()

	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())
	self := redfishv1.MustResourcePath("/redfish/v1/Systems/437XR1138R2")

	s, err := reader.ReadComputerSystem(parse(t, self.String(), sampleSystem), self)
	require.NoError(t, err)

	assert.Equal(t, self, s.Path)
	assert.Equal(t, "437XR1138R2", s.ID)
	assert.Equal(t, "web483", s.HostName)
	assert.Equal(t, "38947555-7742-3448-3784-823347823834", s.UUID)
	assert.Equal(t, "P79 v1.33 (02/28/2015)", s.BiosVersion)
	assert.Equal(t, redfishv1.PowerStateOn, s.PowerState)
	assert.Equal(t, redfishv1.Boot{
		Source:     redfishv1.BootSourceUefiTarget,
		Enabled:    redfishv1.BootOverrideOnce,
		UefiTarget: "/0x31/0x33/0x01/0x01",
	}, s.Boot)
	assert.Equal(t, &redfishv1.OperatingStatus{
		Health:       redfishv1.HealthOK,
		HealthRollup: redfishv1.HealthOK,
		State:        redfishv1.StateEnabled,
	}, s.ProcessorStatus)
	assert.Equal(t, &redfishv1.OperatingStatus{Health: redfishv1.HealthWarning, State: redfishv1.StateEnabled}, s.MemoryStatus)
	assert.Equal(t, paths("/redfish/v1/Chassis/1U"), s.Chassis)
	assert.Equal(t, "/redfish/v1/Systems/437XR1138R2/LogServices", s.LogServices.String())
	assert.Len(t, s.Actions, 2)
	assert.Equal(t, "#ComputerSystem.Reset", s.Actions[0].Name)
	assert.Equal(t, "#Contoso.Reset", s.Actions[1].Name)
}

func TestReadComputerSystemRequiresSelfPath(t *testing.T) {
	t.Parallel()

	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())

	_, err := reader.ReadComputerSystem(parse(t, "/redfish/v1/Systems/437XR1138R2", sampleSystem), redfishv1.ResourcePath{})
	require.ErrorIs(t, err, redfishv1.ErrMandatoryField)
}

func TestReadComputerSystemRejectsUnknownKeywords(t *testing.T) {
	t.Parallel()

	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())
	self := redfishv1.MustResourcePath("/redfish/v1/Systems/1")

	for field, body := range map[string]string{
		"PowerState":                `{"PowerState": "Hibernating"}`,
		"BootSourceOverrideTarget":  `{"Boot": {"BootSourceOverrideTarget": "Tape"}}`,
		"BootSourceOverrideEnabled": `{"Boot": {"BootSourceOverrideEnabled": "Always"}}`,
		"Health":                    `{"MemorySummary": {"Status": {"Health": "Meh"}}}`,
	} {
		_, err := reader.ReadComputerSystem(parse(t, self.String(), body), self)

		var enumErr *redfishv1.EnumError

		require.ErrorAs(t, err, &enumErr, field)
		assert.Equal(t, field, enumErr.Field)
	}
}
