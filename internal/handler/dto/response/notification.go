package response

import (
	"time"

	"equiploan/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotificationView(view *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        view.ID,
		Message:   view.Message,
		IsRead:    view.IsRead,
		CreatedAt: view.CreatedAt,
	}
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	result := make([]*NotificationResponse, len(views))
	for i, view := range views {
		result[i] = FromNotificationView(view)
	}
	return result
}
