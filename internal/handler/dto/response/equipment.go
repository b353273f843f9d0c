package response

import (
	"time"

	"equiploan/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	FullName     string    `json:"fullName"`
	SerialNumber string    `json:"serialNumber"`
	Condition    bool      `json:"condition"`
	Quantity     int       `json:"quantity"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromEquipmentView(view *queries.EquipmentView) *EquipmentResponse {
	return &EquipmentResponse{
		ID:           view.ID,
		Name:         view.Name,
		FullName:     view.FullName,
		SerialNumber: view.SerialNumber,
		Condition:    view.Condition,
		Quantity:     view.Quantity,
		Description:  view.Description,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

func FromEquipmentViews(views []*queries.EquipmentView) []*EquipmentResponse {
	result := make([]*EquipmentResponse, len(views))
	for i, view := range views {
		result[i] = FromEquipmentView(view)
	}
	return result
}
