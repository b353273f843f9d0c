package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type EquipmentSnapshot struct {
	ID           uuid.UUID
	Name         string
	FullName     string
	SerialNumber string
	Condition    bool
	Quantity     int
}

type HistorySnapshot struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	EquipmentID        uuid.UUID
	UnassignedQuantity int
	UnassignDate       time.Time
	ReturnStatus       string
}

type NotificationSnapshot struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Message string
	IsRead  bool
}
