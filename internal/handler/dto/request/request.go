package request

import (
	"github.com/google/uuid"
)

type SubmitRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

// DecideRequest carries the admin decision on a pending request.
// "active" accepts the request, "denied" denies and removes it.
type DecideRequest struct {
	RequestStatus string `json:"request_status" binding:"required,oneof=active denied"`
}

type ReturnRequest struct {
	UnassignQuantity int `json:"unassign_quantity" binding:"required"`
}
