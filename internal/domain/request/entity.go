package request

import (
	"time"

	"equiploan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity = errs.New("request quantity must be at least 1")
	ErrAlreadyDenied       = errs.New("request is already denied")
	ErrNotPending          = errs.New("request is not pending")
	ErrNotActive           = errs.New("request is not active")
	ErrInvalidUnassign     = errs.New("invalid quantity for unassigning equipment")
)

// Request is a user's claim on some quantity of an equipment item. While
// active, quantity is the amount currently held by the user; it is
// reconciled against Equipment on every transition.
type Request struct {
	id           uuid.UUID
	userID       uuid.UUID
	equipmentID  uuid.UUID
	quantity     int
	status       Status
	returnStatus Status
	assignDate   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewRequest creates a pending request with the requested quantity and no
// reservation against inventory.
func NewRequest(userID, equipmentID uuid.UUID, quantity int) (*Request, error) {
	if quantity < 1 {
		return nil, ErrNonPositiveQuantity
	}

	return &Request{
		id:           uuid.New(),
		userID:       userID,
		equipmentID:  equipmentID,
		quantity:     quantity,
		status:       StatusPending,
		returnStatus: StatusInactive,
	}, nil
}

func ReconstructRequest(id, userID, equipmentID uuid.UUID, quantity int, status, returnStatus Status, assignDate *time.Time, createdAt, updatedAt time.Time) *Request {
	return &Request{
		id:           id,
		userID:       userID,
		equipmentID:  equipmentID,
		quantity:     quantity,
		status:       status,
		returnStatus: returnStatus,
		assignDate:   assignDate,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Accept activates the request. The caller reserves r.Quantity() against the
// equipment in the same transaction.
func (r *Request) Accept(now time.Time) {
	r.status = StatusActive
	r.assignDate = &now
}

// Deny rejects the request. A request that is already denied cannot be denied
// again; the record is deleted afterwards, with no history entry and no
// inventory adjustment (quantity was never reserved while pending).
func (r *Request) Deny() error {
	if r.status == StatusDenied {
		return ErrAlreadyDenied
	}
	r.status = StatusDenied
	return nil
}

// Return gives back unassign quantity. When the remaining quantity reaches
// zero the request becomes inactive/returned and the caller deletes the
// record. Returns the remaining held quantity.
func (r *Request) Return(unassignQuantity int) (int, error) {
	if unassignQuantity < 1 {
		return r.quantity, ErrInvalidUnassign
	}
	if unassignQuantity > r.quantity {
		return r.quantity, ErrInvalidUnassign
	}

	r.quantity -= unassignQuantity
	if r.quantity == 0 {
		r.status = StatusInactive
		r.returnStatus = StatusReturned
	}
	return r.quantity, nil
}

func (r *Request) IsPending() bool { return r.status == StatusPending }
func (r *Request) IsActive() bool  { return r.status == StatusActive }

// FullyReturned reports whether all held equipment has been given back.
func (r *Request) FullyReturned() bool { return r.quantity == 0 }

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) UserID() uuid.UUID      { return r.userID }
func (r *Request) EquipmentID() uuid.UUID { return r.equipmentID }
func (r *Request) Quantity() int          { return r.quantity }
func (r *Request) Status() Status         { return r.status }
func (r *Request) ReturnStatus() Status   { return r.returnStatus }
func (r *Request) AssignDate() *time.Time { return r.assignDate }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) UpdatedAt() time.Time   { return r.updatedAt }
