package api

import (
	"log/slog"
	"net/http"

	"equiploan/internal/handler/middleware"
	"equiploan/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are enforced by the CORS middleware on the upgrade request.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type WSHandler struct {
	hub *notify.Hub
}

func NewWSHandler(hub *notify.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// @Summary Open notification stream
// @Description Upgrade to a websocket that receives return events for the authenticated user
// @Tags notifications
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *WSHandler) Connect(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "user_id", userID, "error", err.Error())
		return
	}

	client := notify.NewClient(h.hub, conn, userID)
	client.Register()

	go client.WritePump()
	go client.ReadPump()
}
