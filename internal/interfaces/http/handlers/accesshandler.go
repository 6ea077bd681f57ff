package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/application/access/dto"
	"rolehub/internal/application/access/services"
	"rolehub/internal/domain/access"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// AccessHandler serves the access catalog within application systems.
type AccessHandler struct {
	service *services.AccessService
	logger  logger.Interface
}

func NewAccessHandler(service *services.AccessService) *AccessHandler {
	return &AccessHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// Create handles POST /accesses
func (h *AccessHandler) Create(c *gin.Context) {
	var req dto.CreateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create access", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get handles GET /accesses/:id
func (h *AccessHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// List handles GET /accesses
func (h *AccessHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	systemID, err := utils.QueryUint(c, "system_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter := access.AccessFilter{
		SystemID:    systemID,
		Criticality: c.Query("criticality"),
		Search:      c.Query("search"),
		Page:        p.Page,
		Size:        p.Size,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}

// Update handles PUT /accesses/:id
func (h *AccessHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update access", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Delete handles DELETE /accesses/:id. Deleting an access also removes
// its grants and profile links.
func (h *AccessHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
