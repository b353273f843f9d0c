package equipment

import (
	"strings"
	"time"

	"equiploan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName             = errs.New("equipment name cannot be empty")
	ErrEmptySerialNumber     = errs.New("equipment serial number cannot be empty")
	ErrNegativeQuantity      = errs.New("equipment quantity cannot be negative")
	ErrInsufficientQuantity  = errs.New("insufficient equipment quantity")
	ErrNonPositiveAdjustment = errs.New("quantity adjustment must be positive")
)

// Equipment is the source of truth for available quantity. Active requests
// borrow against it via Reserve and give back via Release.
type Equipment struct {
	id           uuid.UUID
	name         string
	fullName     string
	serialNumber string
	condition    bool
	quantity     int
	description  *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewEquipment(name, fullName, serialNumber string, condition bool, quantity int, description *string) (*Equipment, error) {
	name = strings.TrimSpace(name)
	serialNumber = strings.TrimSpace(serialNumber)
	if name == "" {
		return nil, ErrEmptyName
	}
	if serialNumber == "" {
		return nil, ErrEmptySerialNumber
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Equipment{
		id:           uuid.New(),
		name:         name,
		fullName:     strings.TrimSpace(fullName),
		serialNumber: serialNumber,
		condition:    condition,
		quantity:     quantity,
		description:  description,
	}, nil
}

// Update replaces the descriptive fields with the same validation rules
// as NewEquipment. Quantity changes here are administrative corrections,
// not reservations.
func (e *Equipment) Update(name, fullName, serialNumber string, condition bool, quantity int, description *string) error {
	name = strings.TrimSpace(name)
	serialNumber = strings.TrimSpace(serialNumber)
	if name == "" {
		return ErrEmptyName
	}
	if serialNumber == "" {
		return ErrEmptySerialNumber
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	e.name = name
	e.fullName = strings.TrimSpace(fullName)
	e.serialNumber = serialNumber
	e.condition = condition
	e.quantity = quantity
	e.description = description
	return nil
}

func ReconstructEquipment(id uuid.UUID, name, fullName, serialNumber string, condition bool, quantity int, description *string, createdAt, updatedAt time.Time) *Equipment {
	return &Equipment{
		id:           id,
		name:         name,
		fullName:     fullName,
		serialNumber: serialNumber,
		condition:    condition,
		quantity:     quantity,
		description:  description,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Reserve decreases the available quantity to back an activated request.
// The resulting quantity must never go negative.
func (e *Equipment) Reserve(amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAdjustment
	}
	if amount > e.quantity {
		return ErrInsufficientQuantity
	}
	e.quantity -= amount
	return nil
}

// Release returns quantity to the pool when a request gives equipment back.
func (e *Equipment) Release(amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAdjustment
	}
	e.quantity += amount
	return nil
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) FullName() string     { return e.fullName }
func (e *Equipment) SerialNumber() string { return e.serialNumber }
func (e *Equipment) Condition() bool      { return e.condition }
func (e *Equipment) Quantity() int        { return e.quantity }
func (e *Equipment) Description() *string { return e.description }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
