package response

import (
	"time"

	"equiploan/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestUserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
}

type RequestEquipmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	FullName     string    `json:"fullName"`
	SerialNumber string    `json:"serialNumber"`
	Quantity     int       `json:"quantity"`
}

type RequestResponse struct {
	ID           uuid.UUID                `json:"id"`
	Quantity     int                      `json:"quantity"`
	Status       string                   `json:"requestStatus"`
	ReturnStatus string                   `json:"returnStatus"`
	AssignDate   *time.Time               `json:"assignDate,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
	User         RequestUserResponse      `json:"user"`
	Equipment    RequestEquipmentResponse `json:"equipment"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DecisionResponse reports the outcome of an accept/deny decision.
type DecisionResponse struct {
	Message   string                    `json:"message"`
	Equipment *RequestEquipmentResponse `json:"equipment,omitempty"`
}

// ReturnResponse reports a partial or full return. Request is omitted
// when the request row was deleted on full return.
type ReturnResponse struct {
	Message string           `json:"message"`
	Request *RequestResponse `json:"request,omitempty"`
}

func FromRequestView(view *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:           view.ID,
		Quantity:     view.Quantity,
		Status:       view.Status,
		ReturnStatus: view.ReturnStatus,
		AssignDate:   view.AssignDate,
		CreatedAt:    view.CreatedAt,
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

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	result := make([]*RequestResponse, len(views))
	for i, view := range views {
		result[i] = FromRequestView(view)
	}
	return result
}
