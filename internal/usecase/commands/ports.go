package commands

import (
	"github.com/google/uuid"
)

// EventPublisher pushes an event to a user's connected sessions.
// Implementations are best-effort; absence of a session is not an error.
type EventPublisher interface {
	Emit(userID uuid.UUID, event string, payload any)
}
