package notify

import "time"

// Event names pushed to connected clients.
const (
	EventEquipmentReturned = "equipmentReturned"
)

// Envelope wraps every pushed message with its event type so clients
// can dispatch without inspecting the payload.
type Envelope struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// ReturnedPayload notifies a user that some of their assigned
// equipment was marked returned.
type ReturnedPayload struct {
	RequestID         string `json:"request_id"`
	EquipmentName     string `json:"equipment_name"`
	ReturnedQuantity  int    `json:"returned_quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
	Message           string `json:"message"`
}
