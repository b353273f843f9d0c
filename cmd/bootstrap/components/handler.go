package components

import (
	"equiploan/internal/handler"
	"equiploan/internal/handler/api"
	"equiploan/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRequestHandler,
		api.NewEquipmentHandler,
		api.NewHistoryHandler,
		api.NewNotificationHandler,
		api.NewWSHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	request *api.RequestHandler,
	equipment *api.EquipmentHandler,
	history *api.HistoryHandler,
	notification *api.NotificationHandler,
	ws *api.WSHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Request:      request,
		Equipment:    equipment,
		History:      history,
		Notification: notification,
		WS:           ws,
	}
}
