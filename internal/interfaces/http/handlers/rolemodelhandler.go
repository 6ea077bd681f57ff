package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/application/rolemodel/dto"
	"rolehub/internal/application/rolemodel/services"
	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// RoleModelHandler serves role models, their profiles and profile access
// links.
type RoleModelHandler struct {
	service  *services.RoleModelService
	matching *services.MatchingService
	logger   logger.Interface
}

func NewRoleModelHandler(service *services.RoleModelService, matching *services.MatchingService) *RoleModelHandler {
	return &RoleModelHandler{
		service:  service,
		matching: matching,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /role-models
func (h *RoleModelHandler) Create(c *gin.Context) {
	var req dto.CreateRoleModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create role model", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateRoleModel(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get handles GET /role-models/:id
func (h *RoleModelHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetRoleModel(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// List handles GET /role-models
func (h *RoleModelHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter := rolemodel.Filter{
		Search: c.Query("search"),
		Page:   p.Page,
		Size:   p.Size,
	}

	items, total, err := h.service.ListRoleModels(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}

// Update handles PUT /role-models/:id
func (h *RoleModelHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateRoleModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update role model", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.UpdateRoleModel(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Delete handles DELETE /role-models/:id
func (h *RoleModelHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteRoleModel(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateProfile handles POST /role-models/:id/profiles
//
//	@Summary		Create role profile
//	@Description	Add a profile with matching criteria to a role model
//	@Tags			role-models
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Role model ID"
//	@Param			profile	body		dto.CreateRoleProfileRequest	true	"Profile data"
//	@Success		201		{object}	dto.RoleProfileDTO
//	@Failure		400		{object}	utils.ErrorInfo
//	@Failure		404		{object}	utils.ErrorInfo
//	@Router			/role-models/{id}/profiles [post]
func (h *RoleModelHandler) CreateProfile(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateRoleProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create role profile", "role_model_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateProfile(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListProfiles handles GET /role-models/:id/profiles
func (h *RoleModelHandler) ListProfiles(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListProfiles(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetProfile handles GET /role-profiles/:id
func (h *RoleModelHandler) GetProfile(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateProfile handles PUT /role-profiles/:id
func (h *RoleModelHandler) UpdateProfile(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateRoleProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update role profile", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteProfile handles DELETE /role-profiles/:id
func (h *RoleModelHandler) DeleteProfile(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// LinkAccess handles POST /role-profiles/:id/accesses
func (h *RoleModelHandler) LinkAccess(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.LinkAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for link access", "role_profile_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.LinkAccess(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListAccesses handles GET /role-profiles/:id/accesses
func (h *RoleModelHandler) ListAccesses(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListProfileAccesses(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UnlinkAccess handles DELETE /role-profiles/:id/accesses/:accessId
func (h *RoleModelHandler) UnlinkAccess(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	accessID, err := utils.ParseUintParam(c, "accessId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.UnlinkAccess(c.Request.Context(), id, accessID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CountMatching handles GET /role-profiles/:id/matching/count
//
//	@Summary		Count matching employees
//	@Description	Count employees selected by a profile's criteria without writing any grants
//	@Tags			role-models
//	@Produce		json
//	@Param			id	path		int	true	"Role profile ID"
//	@Success		200	{object}	dto.MatchCountDTO
//	@Failure		404	{object}	utils.ErrorInfo
//	@Router			/role-profiles/{id}/matching/count [get]
func (h *RoleModelHandler) CountMatching(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.matching.CountMatching(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListMatching handles GET /role-profiles/:id/matching
//
//	@Summary		Preview matching employees
//	@Description	List employees selected by a profile's criteria, ordered by full name
//	@Tags			role-models
//	@Produce		json
//	@Param			id		path		int	true	"Role profile ID"
//	@Param			page	query		int	false	"Page number"
//	@Param			size	query		int	false	"Page size"
//	@Success		200		{object}	utils.ListResponse
//	@Failure		400		{object}	utils.ErrorInfo
//	@Failure		404		{object}	utils.ErrorInfo
//	@Router			/role-profiles/{id}/matching [get]
func (h *RoleModelHandler) ListMatching(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, total, err := h.matching.ListMatching(c.Request.Context(), id, p.Page, p.Size)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}
