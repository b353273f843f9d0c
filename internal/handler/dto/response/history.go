package response

import (
	"time"

	"equiploan/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryResponse struct {
	ID                 uuid.UUID                `json:"id"`
	UnassignedQuantity int                      `json:"unassignedQuantity"`
	UnassignDate       time.Time                `json:"unassignDate"`
	ReturnStatus       string                   `json:"returnStatus"`
	User               RequestUserResponse      `json:"user"`
	Equipment          RequestEquipmentResponse `json:"equipment"`
}

func FromHistoryView(view *queries.HistoryView) *HistoryResponse {
	return &HistoryResponse{
		ID:                 view.ID,
		UnassignedQuantity: view.UnassignedQuantity,
		UnassignDate:       view.UnassignDate,
		ReturnStatus:       view.ReturnStatus,
		User: RequestUserResponse{
			ID:        view.User.ID,
			FirstName: view.User.FirstName,
			LastName:  view.User.LastName,
			Username:  view.User.Username,
		},
		Equipment: RequestEquipmentResponse{
			ID:           view.Equipment.ID,
			Name:         view.Equipment.Name,
			FullName:     view.Equipment.FullName,
			SerialNumber: view.Equipment.SerialNumber,
			Quantity:     view.Equipment.Quantity,
		},
	}
}

func FromHistoryViews(views []*queries.HistoryView) []*HistoryResponse {
	result := make([]*HistoryResponse, len(views))
	for i, view := range views {
		result[i] = FromHistoryView(view)
	}
	return result
}
