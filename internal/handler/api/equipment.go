package api

import (
	"errors"
	"net/http"

	reqdto "equiploan/internal/handler/dto/request"
	resdto "equiploan/internal/handler/dto/response"
	"equiploan/internal/usecase/commands"
	"equiploan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	cmds commands.EquipmentCommands
	q    queries.EquipmentQueries
}

func NewEquipmentHandler(cmds commands.EquipmentCommands, q queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{cmds: cmds, q: q}
}

// @Summary Register equipment
// @Description Register a new equipment item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateSerialNumber):
			c.JSON(http.StatusConflict, gin.H{"error": "Serial number already registered"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEquipmentView(view))
}

// @Summary Update equipment
// @Description Partially update an equipment item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/equipment/{id} [put]
func (h *EquipmentHandler) Update(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), equipmentID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found!"})
		case errors.Is(err, commands.ErrDuplicateSerialNumber):
			c.JSON(http.StatusConflict, gin.H{"error": "Serial number already registered"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Get equipment
// @Description Get an equipment item by ID
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, queries.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary List equipment
// @Description List all equipment items
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
}
