//go:build unit || e2e

package builder

import (
	"equiploan/internal/domain/equipment"
)

type EquipmentBuilder struct {
	Name         string
	FullName     string
	SerialNumber string
	Condition    bool
	Quantity     int
	Description  *string
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		Name:         "Laptop",
		FullName:     "Dell Latitude 5420",
		SerialNumber: "SN-TEST-001",
		Condition:    true,
		Quantity:     10,
	}
}

func (e *EquipmentBuilder) BuildDomain() (*equipment.Equipment, error) {
	return equipment.NewEquipment(e.Name, e.FullName, e.SerialNumber, e.Condition, e.Quantity, e.Description)
}

// Fluent builder methods
func (e *EquipmentBuilder) WithQuantity(quantity int) *EquipmentBuilder {
	e.Quantity = quantity
	return e
}
