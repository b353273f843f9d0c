package api

import (
	"errors"
	"net/http"

	reqdto "equiploan/internal/handler/dto/request"
	resdto "equiploan/internal/handler/dto/response"
	"equiploan/internal/handler/middleware"
	"equiploan/internal/usecase/commands"
	"equiploan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Submit equipment request
// @Description Submit a pending request for a quantity of equipment
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitRequest true "Equipment request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /user/requests [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found!"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own requests
// @Description List the authenticated user's equipment requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Router /user/requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Cancel own pending request
// @Description Delete the authenticated user's pending request
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /user/requests/{id} [delete]
func (h *RequestHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), requestID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found!"})
		case errors.Is(err, commands.ErrRequestNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": "Request belongs to another user"})
		case errors.Is(err, commands.ErrRequestNotPending):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending requests can be canceled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List active requests
// @Description List all active equipment assignments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} map[string]string
// @Router /admin/requests/active [get]
func (h *RequestHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrNoActiveRequests) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active equipment assigned!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List pending requests
// @Description List all pending equipment requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} map[string]string
// @Router /admin/requests/pending [get]
func (h *RequestHandler) ListPending(c *gin.Context) {
	views, err := h.q.ListPending(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrNoPendingRequests) {
			c.JSON(http.StatusNotFound, gin.H{"error": "There are no pending requests!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Decide on a pending request
// @Description Accept (activate) or deny a pending equipment request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.DecideRequest true "Decision"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id} [patch]
func (h *RequestHandler) Decide(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var req reqdto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cmds.Decide(c.Request.Context(), requestID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found!"})
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found!"})
		case errors.Is(err, commands.ErrRequestAlreadyDenied):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request is already denied!"})
		case errors.Is(err, commands.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient equipment quantity!"})
		case errors.Is(err, commands.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	response := resdto.DecisionResponse{Message: result.Message}
	if result.Equipment != nil {
		response.Equipment = &resdto.RequestEquipmentResponse{
			ID:           result.Equipment.ID,
			Name:         result.Equipment.Name,
			FullName:     result.Equipment.FullName,
			SerialNumber: result.Equipment.SerialNumber,
			Quantity:     result.Equipment.Quantity,
		}
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Return assigned equipment
// @Description Unassign a quantity from an active request, restocking the equipment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ReturnRequest true "Unassign quantity"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/return [patch]
func (h *RequestHandler) Return(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var req reqdto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity for unassigning equipment!"})
		return
	}

	result, err := h.cmds.Return(c.Request.Context(), requestID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found!"})
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found!"})
		case errors.Is(err, commands.ErrInvalidUnassignQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity for unassigning equipment!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	response := resdto.ReturnResponse{Message: result.Message}
	if result.Request != nil {
		response.Request = resdto.FromRequestView(result.Request)
	}
	c.JSON(http.StatusOK, response)
}
