package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/application/organization/dto"
	"rolehub/internal/application/organization/services"
	"rolehub/internal/domain/organization"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// ReferenceHandler serves the flat name catalogs: employee profiles,
// employee types and team roles. One handler covers all three since they
// share the same shape; the route group decides the kind.
type ReferenceHandler struct {
	service *services.ReferenceService
	kind    organization.RefKind
	logger  logger.Interface
}

func NewReferenceHandler(service *services.ReferenceService, kind organization.RefKind) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
		kind:    kind,
		logger:  logger.NewLogger(),
	}
}

// Create handles POST for the catalog.
func (h *ReferenceHandler) Create(c *gin.Context) {
	var req dto.CreateNamedRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create reference", "kind", string(h.kind), "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), h.kind, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get handles GET by ID for the catalog.
func (h *ReferenceHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), h.kind, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// List handles GET for the whole catalog. The catalogs are small, so
// listings are unpaginated.
func (h *ReferenceHandler) List(c *gin.Context) {
	result, err := h.service.ListAll(c.Request.Context(), h.kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
