package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// RequestUserView is the user snapshot joined into request views.
type RequestUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
}

// RequestEquipmentView is the equipment snapshot joined into request views.
type RequestEquipmentView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	FullName     string    `json:"full_name"`
	SerialNumber string    `json:"serial_number"`
	Quantity     int       `json:"quantity"`
}

type RequestView struct {
	ID           uuid.UUID            `json:"id"`
	Quantity     int                  `json:"quantity"`
	Status       string               `json:"request_status"`
	ReturnStatus string               `json:"return_status"`
	AssignDate   *time.Time           `json:"assign_date,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	User         RequestUserView      `json:"user"`
	Equipment    RequestEquipmentView `json:"equipment"`
}

type EquipmentView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	FullName     string    `json:"full_name"`
	SerialNumber string    `json:"serial_number"`
	Condition    bool      `json:"condition"`
	Quantity     int       `json:"quantity"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type HistoryView struct {
	ID                 uuid.UUID            `json:"id"`
	UnassignedQuantity int                  `json:"unassigned_quantity"`
	UnassignDate       time.Time            `json:"unassign_date"`
	ReturnStatus       string               `json:"return_status"`
	User               RequestUserView      `json:"user"`
	Equipment          RequestEquipmentView `json:"equipment"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Position  string    `json:"position"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}
