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

// AssignmentHandler serves access grant operations: bulk assignment,
// profile reconciliation and revocation.
type AssignmentHandler struct {
	reconciler *services.ReconcilerService
	logger     logger.Interface
}

func NewAssignmentHandler(reconciler *services.ReconcilerService) *AssignmentHandler {
	return &AssignmentHandler{
		reconciler: reconciler,
		logger:     logger.NewLogger(),
	}
}

// Assign handles POST /assignments
//
//	@Summary		Assign one access
//	@Description	Grant a single access to a single employee
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			assignment	body		dto.AssignRequest	true	"Assignment data"
//	@Success		201			{object}	dto.EmployeeAccessDTO
//	@Failure		400			{object}	utils.ErrorInfo
//	@Failure		404			{object}	utils.ErrorInfo	"The employee, access or profile does not exist"
//	@Failure		409			{object}	utils.ErrorInfo	"The employee already holds this access"
//	@Router			/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reconciler.AssignSingle(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// BulkAssign handles POST /assignments/bulk
//
//	@Summary		Bulk assign accesses
//	@Description	Grant every (employee, access) pair in the cross product; existing grants are skipped
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			assignment	body		dto.BulkAssignRequest	true	"Assignment data"
//	@Success		200			{object}	dto.BulkAssignResult
//	@Failure		400			{object}	utils.ErrorInfo
//	@Failure		404			{object}	utils.ErrorInfo	"An employee, access or profile does not exist"
//	@Router			/assignments/bulk [post]
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	var req dto.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk assign", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reconciler.Assign(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// AssignFromProfile handles POST /role-profiles/:id/assign
//
//	@Summary		Assign accesses from a role profile
//	@Description	Grant the profile's accesses to every employee its criteria match
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path		int	true	"Role profile ID"
//	@Success		200	{object}	dto.BulkAssignResult
//	@Failure		404	{object}	utils.ErrorInfo
//	@Router			/role-profiles/{id}/assign [post]
func (h *AssignmentHandler) AssignFromProfile(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reconciler.AssignFromProfile(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// BulkRevoke handles POST /assignments/bulk-revoke
//
//	@Summary		Bulk revoke accesses
//	@Description	Remove every existing grant in the (employee, access) cross product
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			revocation	body		dto.BulkRevokeRequest	true	"Revocation data"
//	@Success		200			{object}	dto.BulkRevokeResult
//	@Failure		400			{object}	utils.ErrorInfo
//	@Router			/assignments/bulk-revoke [post]
func (h *AssignmentHandler) BulkRevoke(c *gin.Context) {
	var req dto.BulkRevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk revoke", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reconciler.RevokeBulk(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// RevokeSingle handles DELETE /assignments/:id
//
//	@Summary		Revoke one grant
//	@Description	Remove a single grant by its ID; revoking a missing grant reports revoked false
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path		int	true	"Assignment ID"
//	@Success		200	{object}	map[string]bool
//	@Router			/assignments/{id} [delete]
func (h *AssignmentHandler) RevokeSingle(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	revoked, err := h.reconciler.RevokeSingle(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"revoked": revoked})
}

// List handles GET /assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter := access.AssignmentFilter{
		Page: p.Page,
		Size: p.Size,
	}
	for name, dst := range map[string]**uint{
		"employee_id":     &filter.EmployeeID,
		"access_id":       &filter.AccessID,
		"system_id":       &filter.SystemID,
		"role_profile_id": &filter.RoleProfileID,
	} {
		v, err := utils.QueryUint(c, name)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		*dst = v
	}
	if raw := c.Query("assignment_type"); raw != "" {
		assignmentType := access.AssignmentType(raw)
		if !assignmentType.IsValid() {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid assignment_type")
			return
		}
		filter.AssignmentType = &assignmentType
	}

	items, total, err := h.reconciler.ListAssignments(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}
