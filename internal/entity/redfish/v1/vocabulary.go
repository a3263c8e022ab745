package redfish

// Keywords is a closed vocabulary of wire keywords for one enum type.
type Keywords[T ~string] struct {
	field  string
	byWire map[string]T
}

// NewKeywords builds a vocabulary for field from its allowed values.
func NewKeywords[T ~string](field string, values ...T) Keywords[T] {
	byWire := make(map[string]T, len(values))
	for _, v := range values {
		byWire[string(v)] = v
	}

	return Keywords[T]{field: field, byWire: byWire}
}

// Parse maps a wire keyword to its value. An empty input is absent and yields
// the zero value; any other unknown input is an *EnumError.
func (k Keywords[T]) Parse(s string) (T, error) {
	var zero T

	if s == "" {
		return zero, nil
	}

	v, ok := k.byWire[s]
	if !ok {
		return zero, &EnumError{Field: k.field, Value: s}
	}

	return v, nil
}

// Contains reports whether s is a keyword of the vocabulary.
func (k Keywords[T]) Contains(s string) bool {
	_, ok := k.byWire[s]

	return ok
}

// Len returns the number of keywords.
func (k Keywords[T]) Len() int {
	return len(k.byWire)
}

// Vocabulary groups every closed keyword set the readers validate against.
// Build one with DefaultVocabulary at startup and pass it to the builders.
type Vocabulary struct {
	ChassisTypes        Keywords[ChassisType]
	IndicatorLEDs       Keywords[IndicatorLED]
	Health              Keywords[Health]
	States              Keywords[State]
	PowerStates         Keywords[PowerState]
	BootSources         Keywords[BootSource]
	BootOverrideEnabled Keywords[BootOverrideEnabled]
}

// DefaultVocabulary returns the Redfish v1 keyword sets.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		ChassisTypes: NewKeywords("ChassisType",
			ChassisTypeBlade, ChassisTypeCard, ChassisTypeCartridge, ChassisTypeComponent,
			ChassisTypeDrawer, ChassisTypeEnclosure, ChassisTypeExpansion, ChassisTypeModule,
			ChassisTypeOther, ChassisTypePod, ChassisTypeRack, ChassisTypeRackMount,
			ChassisTypeRow, ChassisTypeShelf, ChassisTypeSidecar, ChassisTypeSled,
			ChassisTypeStandAlone, ChassisTypeZone,
		),
		IndicatorLEDs: NewKeywords("IndicatorLED",
			IndicatorLEDUnknown, IndicatorLEDLit, IndicatorLEDBlinking, IndicatorLEDOff,
		),
		Health: NewKeywords("Health",
			HealthOK, HealthWarning, HealthCritical,
		),
		States: NewKeywords("State",
			StateAbsent, StateDisabled, StateEnabled, StateInTest,
			StateStandbyOffline, StateStandbySpare, StateStarting,
		),
		PowerStates: NewKeywords("PowerState",
			PowerStateOn, PowerStateOff, PowerStatePoweringOn, PowerStatePoweringOff,
		),
		BootSources: NewKeywords("BootSourceOverrideTarget",
			BootSourceNone, BootSourcePxe, BootSourceFloppy, BootSourceCd, BootSourceUsb,
			BootSourceHdd, BootSourceBiosSetup, BootSourceUtilities, BootSourceDiags,
			BootSourceUefiShell, BootSourceUefiTarget, BootSourceSDCard, BootSourceUefiHTTP,
			BootSourceRemoteDrive, BootSourceUefiBootNext,
		),
		BootOverrideEnabled: NewKeywords("BootSourceOverrideEnabled",
			BootOverrideDisabled, BootOverrideOnce, BootOverrideContinuous,
		),
	}
}
