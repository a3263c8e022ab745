package redfish

// ChassisType is the physical form factor of a chassis.
type ChassisType string

const (
	ChassisTypeBlade      ChassisType = "Blade"
	ChassisTypeCard       ChassisType = "Card"
	ChassisTypeCartridge  ChassisType = "Cartridge"
	ChassisTypeComponent  ChassisType = "Component"
	ChassisTypeDrawer     ChassisType = "Drawer"
	ChassisTypeEnclosure  ChassisType = "Enclosure"
	ChassisTypeExpansion  ChassisType = "Expansion"
	ChassisTypeModule     ChassisType = "Module"
	ChassisTypeOther      ChassisType = "Other"
	ChassisTypePod        ChassisType = "Pod"
	ChassisTypeRack       ChassisType = "Rack"
	ChassisTypeRackMount  ChassisType = "RackMount"
	ChassisTypeRow        ChassisType = "Row"
	ChassisTypeShelf      ChassisType = "Shelf"
	ChassisTypeSidecar    ChassisType = "Sidecar"
	ChassisTypeSled       ChassisType = "Sled"
	ChassisTypeStandAlone ChassisType = "StandAlone"
	ChassisTypeZone       ChassisType = "Zone"
)

// IndicatorLED is the state of a resource's identify LED.
type IndicatorLED string

const (
	IndicatorLEDUnknown  IndicatorLED = "Unknown"
	IndicatorLEDLit      IndicatorLED = "Lit"
	IndicatorLEDBlinking IndicatorLED = "Blinking"
	IndicatorLEDOff      IndicatorLED = "Off"
)

// Health is the health of a resource or, as a rollup, of its dependents.
type Health string

const (
	HealthOK       Health = "OK"
	HealthWarning  Health = "Warning"
	HealthCritical Health = "Critical"
)

// State is the operating state of a resource.
type State string

const (
	StateAbsent         State = "Absent"
	StateDisabled       State = "Disabled"
	StateEnabled        State = "Enabled"
	StateInTest         State = "InTest"
	StateStandbyOffline State = "StandbyOffline"
	StateStandbySpare   State = "StandbySpare"
	StateStarting       State = "Starting"
)

// PowerState is the power state of a computer system.
type PowerState string

const (
	PowerStateOn          PowerState = "On"
	PowerStateOff         PowerState = "Off"
	PowerStatePoweringOn  PowerState = "PoweringOn"
	PowerStatePoweringOff PowerState = "PoweringOff"
)

// BootSource is the one-shot or persistent boot override target.
type BootSource string

const (
	BootSourceNone         BootSource = "None"
	BootSourcePxe          BootSource = "Pxe"
	BootSourceFloppy       BootSource = "Floppy"
	BootSourceCd           BootSource = "Cd"
	BootSourceUsb          BootSource = "Usb"
	BootSourceHdd          BootSource = "Hdd"
	BootSourceBiosSetup    BootSource = "BiosSetup"
	BootSourceUtilities    BootSource = "Utilities"
	BootSourceDiags        BootSource = "Diags"
	BootSourceUefiShell    BootSource = "UefiShell"
	BootSourceUefiTarget   BootSource = "UefiTarget"
	BootSourceSDCard       BootSource = "SDCard"
	BootSourceUefiHTTP     BootSource = "UefiHttp"
	BootSourceRemoteDrive  BootSource = "RemoteDrive"
	BootSourceUefiBootNext BootSource = "UefiBootNext"
)

// BootOverrideEnabled controls whether the boot override applies.
type BootOverrideEnabled string

const (
	BootOverrideDisabled   BootOverrideEnabled = "Disabled"
	BootOverrideOnce       BootOverrideEnabled = "Once"
	BootOverrideContinuous BootOverrideEnabled = "Continuous"
)
