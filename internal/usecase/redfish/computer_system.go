package redfish

import (
	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

type systemBuilder = *redfishv1.ComputerSystemBuilder

var computerSystemFields = sortFields([]field[systemBuilder]{
	{"Actions", extractActions, actions(systemBuilder.SetActions)},
	{"AssetTag", extractProperty, text(systemBuilder.SetAssetTag)},
	{"BiosVersion", extractProperty, text(systemBuilder.SetBiosVersion)},
	{"Boot.BootSourceOverrideEnabled", extractComplex, keyword(systemBuilder.SetBootOverrideEnabled)},
	{"Boot.BootSourceOverrideTarget", extractComplex, keyword(systemBuilder.SetBootSource)},
	{"Boot.UefiTargetBootSourceOverride", extractComplex, text(systemBuilder.SetUefiTarget)},
	{"Description", extractProperty, text(systemBuilder.SetDescription)},
	{"HostName", extractProperty, text(systemBuilder.SetHostName)},
	{"Id", extractProperty, text(systemBuilder.SetID)},
	{"Links.Chassis", extractLinkArray, links(systemBuilder.SetChassis)},
	{"Links.CooledBy", extractLinkArray, links(systemBuilder.SetCooledBy)},
	{"Links.ManagedBy", extractLinkArray, links(systemBuilder.SetManagedBy)},
	{"Links.PoweredBy", extractLinkArray, links(systemBuilder.SetPoweredBy)},
	{"LogServices", extractAnnotation, link(systemBuilder.SetLogServices)},
	{"Manufacturer", extractProperty, text(systemBuilder.SetManufacturer)},
	{"MemorySummary.Status", extractStatus, status(systemBuilder.SetMemoryStatus)},
	{"Model", extractProperty, text(systemBuilder.SetModel)},
	{"Name", extractProperty, text(systemBuilder.SetName)},
	{"PartNumber", extractProperty, text(systemBuilder.SetPartNumber)},
	{"PowerState", extractProperty, keyword(systemBuilder.SetPowerState)},
	{"ProcessorSummary.Status", extractStatus, status(systemBuilder.SetProcessorStatus)},
	{"SKU", extractProperty, text(systemBuilder.SetSKU)},
	{"SerialNumber", extractProperty, text(systemBuilder.SetSerialNumber)},
	{"Status", extractStatus, status(systemBuilder.SetStatus)},
	{"UUID", extractProperty, text(systemBuilder.SetUUID)},
})

// ReadComputerSystem reads one ComputerSystem document. self is the path the
// system is known by; it is mandatory and is not read from the document.
func (e *EntityReader) ReadComputerSystem(doc *document.Document, self redfishv1.ResourcePath) (redfishv1.ComputerSystem, error) {
	r, err := NewReader(doc, redfishv1.ServiceComputerSystems, e.vocab)
	if err != nil {
		return redfishv1.ComputerSystem{}, err
	}

	b := redfishv1.NewComputerSystemBuilder(e.vocab)
	b.SetPath(self)

	if err := readFields(r, b, computerSystemFields); err != nil {
		return redfishv1.ComputerSystem{}, err
	}

	return b.Build()
}
