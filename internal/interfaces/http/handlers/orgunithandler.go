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

// OrgUnitHandler serves the organizational unit hierarchy.
type OrgUnitHandler struct {
	service *services.OrgUnitService
	logger  logger.Interface
}

func NewOrgUnitHandler(service *services.OrgUnitService) *OrgUnitHandler {
	return &OrgUnitHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// Create handles POST /org-units
//
//	@Summary		Create organizational unit
//	@Description	Create a new unit under an optional parent; level and path are derived from the parent
//	@Tags			org-units
//	@Accept			json
//	@Produce		json
//	@Param			unit	body		dto.CreateOrgUnitRequest	true	"Unit data"
//	@Success		201		{object}	dto.OrgUnitDTO
//	@Failure		400		{object}	utils.ErrorInfo
//	@Failure		409		{object}	utils.ErrorInfo
//	@Router			/org-units [post]
func (h *OrgUnitHandler) Create(c *gin.Context) {
	var req dto.CreateOrgUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create org unit", "error", err)
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

// Get handles GET /org-units/:id
func (h *OrgUnitHandler) Get(c *gin.Context) {
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

// List handles GET /org-units
func (h *OrgUnitHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter := organization.OrgUnitFilter{
		Search: c.Query("search"),
		Page:   p.Page,
		Size:   p.Size,
	}
	if raw := c.Query("unit_type"); raw != "" {
		unitType := organization.UnitType(raw)
		if !unitType.IsValid() {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid unit_type")
			return
		}
		filter.UnitType = &unitType
	}
	parentID, err := utils.QueryUint(c, "parent_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	filter.ParentID = parentID

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}

// Update handles PUT /org-units/:id
func (h *OrgUnitHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateOrgUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update org unit", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Rename(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Delete handles DELETE /org-units/:id
func (h *OrgUnitHandler) Delete(c *gin.Context) {
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
