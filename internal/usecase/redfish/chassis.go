package redfish

import (
	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

type chassisBuilder = *redfishv1.ChassisBuilder

var chassisFields = sortFields([]field[chassisBuilder]{
	{"Actions", extractActions, actions(chassisBuilder.SetActions)},
	{"AssetTag", extractProperty, text(chassisBuilder.SetAssetTag)},
	{"ChassisType", extractProperty, keyword(chassisBuilder.SetChassisType)},
	{"Description", extractProperty, text(chassisBuilder.SetDescription)},
	{"Id", extractProperty, text(chassisBuilder.SetID)},
	{"IndicatorLED", extractProperty, keyword(chassisBuilder.SetIndicatorLED)},
	{"Links.ComputerSystems", extractLinkArray, links(chassisBuilder.SetComputerSystems)},
	{"Links.ContainedBy", extractLinkSingle, link(chassisBuilder.SetContainedBy)},
	{"Links.Contains", extractLinkArray, links(chassisBuilder.SetContains)},
	{"Links.CooledBy", extractLinkArray, links(chassisBuilder.SetCooledBy)},
	{"Links.ManagedBy", extractLinkArray, links(chassisBuilder.SetManagedBy)},
	{"Links.PoweredBy", extractLinkArray, links(chassisBuilder.SetPoweredBy)},
	{"LogServices", extractAnnotation, link(chassisBuilder.SetLogServices)},
	{"Manufacturer", extractProperty, text(chassisBuilder.SetManufacturer)},
	{"Model", extractProperty, text(chassisBuilder.SetModel)},
	{"Name", extractProperty, text(chassisBuilder.SetName)},
	{"PartNumber", extractProperty, text(chassisBuilder.SetPartNumber)},
	{"Power", extractAnnotation, link(chassisBuilder.SetPower)},
	{"SKU", extractProperty, text(chassisBuilder.SetSKU)},
	{"SerialNumber", extractProperty, text(chassisBuilder.SetSerialNumber)},
	{"Status", extractStatus, status(chassisBuilder.SetStatus)},
	{"Thermal", extractAnnotation, link(chassisBuilder.SetThermal)},
})

// EntityReader turns fetched documents into entities using one vocabulary.
type EntityReader struct {
	vocab *redfishv1.Vocabulary
}

// NewEntityReader -.
func NewEntityReader(vocab *redfishv1.Vocabulary) *EntityReader {
	return &EntityReader{vocab: vocab}
}

// Vocabulary -.
func (e *EntityReader) Vocabulary() *redfishv1.Vocabulary {
	return e.vocab
}

// ReadChassis reads one Chassis document. The chassis path is the path the
// document was fetched from.
func (e *EntityReader) ReadChassis(doc *document.Document) (redfishv1.Chassis, error) {
	r, err := NewReader(doc, redfishv1.ServiceChassis, e.vocab)
	if err != nil {
		return redfishv1.Chassis{}, err
	}

	b := redfishv1.NewChassisBuilder(e.vocab)

	if p, ok := linkPath(doc.Path); ok {
		b.SetPath(p)
	}

	if err := readFields(r, b, chassisFields); err != nil {
		return redfishv1.Chassis{}, err
	}

	return b.Build()
}
