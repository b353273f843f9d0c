//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"equiploan/internal/handler/api"
	resdto "equiploan/internal/handler/dto/response"
	"equiploan/internal/usecase/commands"
	"equiploan/internal/usecase/queries"
	"equiploan/tests/common/httptest"
	mock_commands "equiploan/tests/mock/commands"
	mock_queries "equiploan/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notificationMocks struct {
	cmds *mock_commands.MockNotificationCommands
	q    *mock_queries.MockNotificationQueries
}

// newNotificationRouter wires the handler behind a stub auth middleware that
// injects the given user, mirroring the real route layout.
func newNotificationRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, notificationMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mocks := notificationMocks{
		cmds: mock_commands.NewMockNotificationCommands(ctrl),
		q:    mock_queries.NewMockNotificationQueries(ctrl),
	}
	handler := api.NewNotificationHandler(mocks.cmds, mocks.q)

	engine := gin.New()
	group := engine.Group("/api/notifications", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	group.GET("", handler.List)
	group.PATCH("/:id/read", handler.MarkRead)
	group.DELETE("/:id", handler.Delete)
	group.DELETE("", handler.DeleteAll)

	return engine, mocks
}

func TestNotificationList(t *testing.T) {
	t.Run("returns the user's notifications", func(t *testing.T) {
		userID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		views := []*queries.NotificationView{
			{
				ID:        uuid.New(),
				UserID:    userID,
				Message:   "Equipment RETURNED: 2 → Laptop",
				IsRead:    false,
				CreatedAt: time.Now().UTC(),
			},
		}
		mocks.q.EXPECT().ListByUser(gomock.Any(), userID).Return(views, nil)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/notifications", nil, "")

		var body []*resdto.NotificationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body, 1)
		assert.Equal(t, views[0].ID, body[0].ID)
		assert.Equal(t, "Equipment RETURNED: 2 → Laptop", body[0].Message)
		assert.False(t, body[0].IsRead)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		userID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		mocks.q.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/notifications", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestNotificationMarkRead(t *testing.T) {
	t.Run("marks and returns no content", func(t *testing.T) {
		userID := uuid.New()
		notificationID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		mocks.cmds.EXPECT().MarkRead(gomock.Any(), notificationID, userID).Return(nil)

		w := httptest.PerformRequest(t, router, http.MethodPatch, "/api/notifications/"+notificationID.String()+"/read", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown notification", func(t *testing.T) {
		userID := uuid.New()
		notificationID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		mocks.cmds.EXPECT().MarkRead(gomock.Any(), notificationID, userID).Return(commands.ErrNotificationNotFound)

		w := httptest.PerformRequest(t, router, http.MethodPatch, "/api/notifications/"+notificationID.String()+"/read", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Notification not found")
	})

	t.Run("someone else's notification", func(t *testing.T) {
		userID := uuid.New()
		notificationID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		mocks.cmds.EXPECT().MarkRead(gomock.Any(), notificationID, userID).Return(commands.ErrNotificationNotOwned)

		w := httptest.PerformRequest(t, router, http.MethodPatch, "/api/notifications/"+notificationID.String()+"/read", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Notification belongs to another user")
	})

	t.Run("malformed id", func(t *testing.T) {
		router, _ := newNotificationRouter(t, uuid.New())

		w := httptest.PerformRequest(t, router, http.MethodPatch, "/api/notifications/not-a-uuid/read", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid notification ID")
	})
}

func TestNotificationDelete(t *testing.T) {
	t.Run("deletes one", func(t *testing.T) {
		userID := uuid.New()
		notificationID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		mocks.cmds.EXPECT().Delete(gomock.Any(), notificationID, userID).Return(nil)

		w := httptest.PerformRequest(t, router, http.MethodDelete, "/api/notifications/"+notificationID.String(), nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("deletes all", func(t *testing.T) {
		userID := uuid.New()
		router, mocks := newNotificationRouter(t, userID)

		mocks.cmds.EXPECT().DeleteAll(gomock.Any(), userID).Return(nil)

		w := httptest.PerformRequest(t, router, http.MethodDelete, "/api/notifications", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
