package history

import (
	"time"

	"equiploan/internal/domain/request"
	"equiploan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity = errs.New("unassigned quantity must be at least 1")
	ErrNotReturned         = errs.New("history entry status is not returned")
)

// Entry is an immutable record of a quantity unassignment event. It
// deliberately carries user and equipment ids rather than a request
// reference: the triggering request may already be deleted.
type Entry struct {
	id                 uuid.UUID
	userID             uuid.UUID
	equipmentID        uuid.UUID
	unassignedQuantity int
	unassignDate       time.Time
	returnStatus       request.Status
	createdAt          time.Time
}

func NewEntry(userID, equipmentID uuid.UUID, unassignedQuantity int, unassignDate time.Time, returnStatus request.Status) (*Entry, error) {
	if unassignedQuantity < 1 {
		return nil, ErrNonPositiveQuantity
	}

	return &Entry{
		id:                 uuid.New(),
		userID:             userID,
		equipmentID:        equipmentID,
		unassignedQuantity: unassignedQuantity,
		unassignDate:       unassignDate,
		returnStatus:       returnStatus,
	}, nil
}

func ReconstructEntry(id, userID, equipmentID uuid.UUID, unassignedQuantity int, unassignDate time.Time, returnStatus request.Status, createdAt time.Time) *Entry {
	return &Entry{
		id:                 id,
		userID:             userID,
		equipmentID:        equipmentID,
		unassignedQuantity: unassignedQuantity,
		unassignDate:       unassignDate,
		returnStatus:       returnStatus,
		createdAt:          createdAt,
	}
}

// CanDelete guards ledger deletion: only entries snapshotted as returned may
// be removed.
func (e *Entry) CanDelete() error {
	if e.returnStatus != request.StatusReturned {
		return ErrNotReturned
	}
	return nil
}

func (e *Entry) ID() uuid.UUID                { return e.id }
func (e *Entry) UserID() uuid.UUID            { return e.userID }
func (e *Entry) EquipmentID() uuid.UUID       { return e.equipmentID }
func (e *Entry) UnassignedQuantity() int      { return e.unassignedQuantity }
func (e *Entry) UnassignDate() time.Time      { return e.unassignDate }
func (e *Entry) ReturnStatus() request.Status { return e.returnStatus }
func (e *Entry) CreatedAt() time.Time         { return e.createdAt }
