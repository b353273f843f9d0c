package request

import (
	"equiploan/internal/domain/equipment"
)

type CreateEquipmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	FullName     string  `json:"full_name" binding:"required"`
	SerialNumber string  `json:"serial_number" binding:"required"`
	Condition    bool    `json:"condition"`
	Quantity     int     `json:"quantity" binding:"required,min=0"`
	Description  *string `json:"description,omitempty"`
}

func (r *CreateEquipmentRequest) ToDomain() (*equipment.Equipment, error) {
	return equipment.NewEquipment(r.Name, r.FullName, r.SerialNumber, r.Condition, r.Quantity, r.Description)
}

// UpdateEquipmentRequest applies a partial update; nil fields keep the
// stored value.
type UpdateEquipmentRequest struct {
	Name         *string `json:"name,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Condition    *bool   `json:"condition,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	Description  *string `json:"description,omitempty"`
}
