package api

import (
	"errors"
	"net/http"

	resdto "equiploan/internal/handler/dto/response"
	"equiploan/internal/usecase/commands"
	"equiploan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HistoryHandler struct {
	cmds commands.HistoryCommands
	q    queries.HistoryQueries
}

func NewHistoryHandler(cmds commands.HistoryCommands, q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{cmds: cmds, q: q}
}

// @Summary List equipment history
// @Description List all unassignment history entries, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HistoryResponse
// @Failure 404 {object} map[string]string
// @Router /admin/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrHistoryEmpty) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment history not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryViews(views))
}

// @Summary Delete history entry
// @Description Delete a returned history entry
// @Tags admin
// @Security BearerAuth
// @Param id path string true "History entry ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/history/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history entry ID"})
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), entryID); err != nil {
		switch {
		case errors.Is(err, commands.ErrHistoryEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment history not found!"})
		case errors.Is(err, commands.ErrHistoryNotReturned):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request status is not 'RETURNED'!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "History entry deleted successfully."})
}
