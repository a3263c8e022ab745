package redfish

import (
	"fmt"
	"slices"
)

// Boot is the boot override configuration of a computer system.
type Boot struct {
	Source     BootSource          `json:"BootSourceOverrideTarget,omitempty"`
	Enabled    BootOverrideEnabled `json:"BootSourceOverrideEnabled,omitempty"`
	UefiTarget string              `json:"UefiTargetBootSourceOverride,omitempty"`
}

// IsZero reports whether no boot field was present.
func (b Boot) IsZero() bool {
	return b == Boot{}
}

// ComputerSystem represents a Redfish ComputerSystem entity. Path is the
// resource path the system was read from and is the key other entities use
// to refer to it.
type ComputerSystem struct {
	Path         ResourcePath `json:"@odata.id"`
	ID           string       `json:"Id,omitempty"`
	Name         string       `json:"Name,omitempty"`
	Description  string       `json:"Description,omitempty"`
	HostName     string       `json:"HostName,omitempty"`
	UUID         string       `json:"UUID,omitempty"`
	Manufacturer string       `json:"Manufacturer,omitempty"`
	Model        string       `json:"Model,omitempty"`
	BiosVersion  string       `json:"BiosVersion,omitempty"`
	PartNumber   string       `json:"PartNumber,omitempty"`
	SerialNumber string       `json:"SerialNumber,omitempty"`
	SKU          string       `json:"SKU,omitempty"`
	AssetTag     string       `json:"AssetTag,omitempty"`
	Boot         Boot         `json:"Boot,omitzero"`
	PowerState   PowerState   `json:"PowerState,omitempty"`
	Actions      []Action     `json:"Actions,omitempty"`

	Status          *OperatingStatus `json:"Status,omitempty"`
	ProcessorStatus *OperatingStatus `json:"ProcessorStatus,omitempty"`
	MemoryStatus    *OperatingStatus `json:"MemoryStatus,omitempty"`

	Chassis     []ResourcePath `json:"Chassis,omitempty"`
	CooledBy    []ResourcePath `json:"CooledBy,omitempty"`
	PoweredBy   []ResourcePath `json:"PoweredBy,omitempty"`
	ManagedBy   []ResourcePath `json:"ManagedBy,omitempty"`
	LogServices ResourcePath   `json:"LogServices,omitzero"`
}

// ComputerSystemBuilder accumulates ComputerSystem fields. A builder is single-use.
type ComputerSystemBuilder struct {
	vocab *Vocabulary
	s     ComputerSystem
}

// NewComputerSystemBuilder -.
func NewComputerSystemBuilder(vocab *Vocabulary) *ComputerSystemBuilder {
	return &ComputerSystemBuilder{vocab: vocab}
}

func (b *ComputerSystemBuilder) SetPath(p ResourcePath)        { b.s.Path = p }
func (b *ComputerSystemBuilder) SetID(v string)                { b.s.ID = v }
func (b *ComputerSystemBuilder) SetName(v string)              { b.s.Name = v }
func (b *ComputerSystemBuilder) SetDescription(v string)       { b.s.Description = v }
func (b *ComputerSystemBuilder) SetHostName(v string)          { b.s.HostName = v }
func (b *ComputerSystemBuilder) SetUUID(v string)              { b.s.UUID = v }
func (b *ComputerSystemBuilder) SetManufacturer(v string)      { b.s.Manufacturer = v }
func (b *ComputerSystemBuilder) SetModel(v string)             { b.s.Model = v }
func (b *ComputerSystemBuilder) SetBiosVersion(v string)       { b.s.BiosVersion = v }
func (b *ComputerSystemBuilder) SetPartNumber(v string)        { b.s.PartNumber = v }
func (b *ComputerSystemBuilder) SetSerialNumber(v string)      { b.s.SerialNumber = v }
func (b *ComputerSystemBuilder) SetSKU(v string)               { b.s.SKU = v }
func (b *ComputerSystemBuilder) SetAssetTag(v string)          { b.s.AssetTag = v }
func (b *ComputerSystemBuilder) SetUefiTarget(v string)        { b.s.Boot.UefiTarget = v }
func (b *ComputerSystemBuilder) SetActions(a []Action)         { b.s.Actions = SortActions(a) }
func (b *ComputerSystemBuilder) SetLogServices(p ResourcePath) { b.s.LogServices = p }

func (b *ComputerSystemBuilder) SetStatus(s *OperatingStatus) { b.s.Status = cloneStatus(s) }
func (b *ComputerSystemBuilder) SetProcessorStatus(s *OperatingStatus) {
	b.s.ProcessorStatus = cloneStatus(s)
}
func (b *ComputerSystemBuilder) SetMemoryStatus(s *OperatingStatus) {
	b.s.MemoryStatus = cloneStatus(s)
}

func (b *ComputerSystemBuilder) SetChassis(p []ResourcePath)   { b.s.Chassis = SortedUnique(p) }
func (b *ComputerSystemBuilder) SetCooledBy(p []ResourcePath)  { b.s.CooledBy = SortedUnique(p) }
func (b *ComputerSystemBuilder) SetPoweredBy(p []ResourcePath) { b.s.PoweredBy = SortedUnique(p) }
func (b *ComputerSystemBuilder) SetManagedBy(p []ResourcePath) { b.s.ManagedBy = SortedUnique(p) }

// SetPowerState validates v against the power state vocabulary.
func (b *ComputerSystemBuilder) SetPowerState(v string) error {
	ps, err := b.vocab.PowerStates.Parse(v)
	if err != nil {
		return err
	}

	b.s.PowerState = ps

	return nil
}

// SetBootSource validates v against the boot override target vocabulary.
func (b *ComputerSystemBuilder) SetBootSource(v string) error {
	src, err := b.vocab.BootSources.Parse(v)
	if err != nil {
		return err
	}

	b.s.Boot.Source = src

	return nil
}

// SetBootOverrideEnabled validates v against the override-enabled vocabulary.
func (b *ComputerSystemBuilder) SetBootOverrideEnabled(v string) error {
	en, err := b.vocab.BootOverrideEnabled.Parse(v)
	if err != nil {
		return err
	}

	b.s.Boot.Enabled = en

	return nil
}

// Build returns the accumulated ComputerSystem, or ErrMandatoryField if the
// self path was never set.
func (b *ComputerSystemBuilder) Build() (ComputerSystem, error) {
	if b.s.Path.IsZero() {
		return ComputerSystem{}, fmt.Errorf("ComputerSystem path: %w", ErrMandatoryField)
	}

	return b.s.clone(), nil
}

func (s ComputerSystem) clone() ComputerSystem {
	out := s
	out.Status = cloneStatus(s.Status)
	out.ProcessorStatus = cloneStatus(s.ProcessorStatus)
	out.MemoryStatus = cloneStatus(s.MemoryStatus)
	out.Actions = slices.Clone(s.Actions)
	out.Chassis = slices.Clone(s.Chassis)
	out.CooledBy = slices.Clone(s.CooledBy)
	out.PoweredBy = slices.Clone(s.PoweredBy)
	out.ManagedBy = slices.Clone(s.ManagedBy)

	return out
}
