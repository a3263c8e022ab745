package redfish

import "slices"

// Chassis represents a Redfish Chassis entity. Values are built once by a
// ChassisBuilder and must be treated as read-only; slice fields are never
// shared with the builder.
type Chassis struct {
	Path         ResourcePath     `json:"@odata.id,omitzero"`
	ID           string           `json:"Id,omitempty"`
	Name         string           `json:"Name,omitempty"`
	Description  string           `json:"Description,omitempty"`
	ChassisType  ChassisType      `json:"ChassisType,omitempty"`
	Manufacturer string           `json:"Manufacturer,omitempty"`
	Model        string           `json:"Model,omitempty"`
	PartNumber   string           `json:"PartNumber,omitempty"`
	SerialNumber string           `json:"SerialNumber,omitempty"`
	SKU          string           `json:"SKU,omitempty"`
	AssetTag     string           `json:"AssetTag,omitempty"`
	Status       *OperatingStatus `json:"Status,omitempty"`
	IndicatorLED IndicatorLED     `json:"IndicatorLED,omitempty"`
	Actions      []Action         `json:"Actions,omitempty"`

	ContainedBy     ResourcePath   `json:"ContainedBy,omitzero"`
	ComputerSystems []ResourcePath `json:"ComputerSystems,omitempty"`
	Contains        []ResourcePath `json:"Contains,omitempty"`
	CooledBy        []ResourcePath `json:"CooledBy,omitempty"`
	PoweredBy       []ResourcePath `json:"PoweredBy,omitempty"`
	ManagedBy       []ResourcePath `json:"ManagedBy,omitempty"`
	Power           ResourcePath   `json:"Power,omitzero"`
	Thermal         ResourcePath   `json:"Thermal,omitzero"`
	LogServices     ResourcePath   `json:"LogServices,omitzero"`
}

// ChassisBuilder accumulates Chassis fields. A builder is single-use.
type ChassisBuilder struct {
	vocab *Vocabulary
	c     Chassis
}

// NewChassisBuilder -.
func NewChassisBuilder(vocab *Vocabulary) *ChassisBuilder {
	return &ChassisBuilder{vocab: vocab}
}

func (b *ChassisBuilder) SetPath(p ResourcePath)        { b.c.Path = p }
func (b *ChassisBuilder) SetID(v string)                { b.c.ID = v }
func (b *ChassisBuilder) SetName(v string)              { b.c.Name = v }
func (b *ChassisBuilder) SetDescription(v string)       { b.c.Description = v }
func (b *ChassisBuilder) SetManufacturer(v string)      { b.c.Manufacturer = v }
func (b *ChassisBuilder) SetModel(v string)             { b.c.Model = v }
func (b *ChassisBuilder) SetPartNumber(v string)        { b.c.PartNumber = v }
func (b *ChassisBuilder) SetSerialNumber(v string)      { b.c.SerialNumber = v }
func (b *ChassisBuilder) SetSKU(v string)               { b.c.SKU = v }
func (b *ChassisBuilder) SetAssetTag(v string)          { b.c.AssetTag = v }
func (b *ChassisBuilder) SetStatus(s *OperatingStatus)  { b.c.Status = cloneStatus(s) }
func (b *ChassisBuilder) SetActions(a []Action)         { b.c.Actions = SortActions(a) }
func (b *ChassisBuilder) SetContainedBy(p ResourcePath) { b.c.ContainedBy = p }
func (b *ChassisBuilder) SetPower(p ResourcePath)       { b.c.Power = p }
func (b *ChassisBuilder) SetThermal(p ResourcePath)     { b.c.Thermal = p }
func (b *ChassisBuilder) SetLogServices(p ResourcePath) { b.c.LogServices = p }

func (b *ChassisBuilder) SetComputerSystems(p []ResourcePath) { b.c.ComputerSystems = SortedUnique(p) }
func (b *ChassisBuilder) SetContains(p []ResourcePath)        { b.c.Contains = SortedUnique(p) }
func (b *ChassisBuilder) SetCooledBy(p []ResourcePath)        { b.c.CooledBy = SortedUnique(p) }
func (b *ChassisBuilder) SetPoweredBy(p []ResourcePath)       { b.c.PoweredBy = SortedUnique(p) }
func (b *ChassisBuilder) SetManagedBy(p []ResourcePath)       { b.c.ManagedBy = SortedUnique(p) }

// SetChassisType validates v against the chassis type vocabulary.
func (b *ChassisBuilder) SetChassisType(v string) error {
	t, err := b.vocab.ChassisTypes.Parse(v)
	if err != nil {
		return err
	}

	b.c.ChassisType = t

	return nil
}

// SetIndicatorLED validates v against the LED vocabulary.
func (b *ChassisBuilder) SetIndicatorLED(v string) error {
	led, err := b.vocab.IndicatorLEDs.Parse(v)
	if err != nil {
		return err
	}

	b.c.IndicatorLED = led

	return nil
}

// Build returns the accumulated Chassis. Every field is optional.
func (b *ChassisBuilder) Build() (Chassis, error) {
	return b.c.clone(), nil
}

func (c Chassis) clone() Chassis {
	out := c
	out.Status = cloneStatus(c.Status)
	out.Actions = slices.Clone(c.Actions)
	out.ComputerSystems = slices.Clone(c.ComputerSystems)
	out.Contains = slices.Clone(c.Contains)
	out.CooledBy = slices.Clone(c.CooledBy)
	out.PoweredBy = slices.Clone(c.PoweredBy)
	out.ManagedBy = slices.Clone(c.ManagedBy)

	return out
}

func cloneStatus(s *OperatingStatus) *OperatingStatus {
	if s == nil {
		return nil
	}

	out := *s

	return &out
}
