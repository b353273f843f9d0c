//go:build unit || e2e

package builder

import (
	"time"

	"equiploan/internal/domain/request"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EquipmentID uuid.UUID
	Quantity    int
	Status      string
	AssignDate  *time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		EquipmentID: uuid.New(),
		Quantity:    2,
		Status:      "pending",
	}
}

func (r *RequestBuilder) BuildDomain() *request.Request {
	now := time.Now()
	return request.ReconstructRequest(
		r.ID, r.UserID, r.EquipmentID, r.Quantity,
		request.Status(r.Status), "", r.AssignDate, now, now,
	)
}

// Fluent builder methods
func (r *RequestBuilder) WithStatus(status string) *RequestBuilder {
	r.Status = status
	return r
}

func (r *RequestBuilder) WithAssignDate(t time.Time) *RequestBuilder {
	r.AssignDate = &t
	return r
}
