package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/application/employee/dto"
	"rolehub/internal/application/employee/services"
	"rolehub/internal/domain/employee"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// EmployeeHandler serves employee records.
type EmployeeHandler struct {
	service *services.EmployeeService
	logger  logger.Interface
}

func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// Create handles POST /employees
//
//	@Summary		Create employee
//	@Description	Create an employee; org unit, position, profile and type must exist
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			employee	body		dto.CreateEmployeeRequest	true	"Employee data"
//	@Success		201			{object}	dto.EmployeeDTO
//	@Failure		400			{object}	utils.ErrorInfo
//	@Failure		404			{object}	utils.ErrorInfo
//	@Router			/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
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

// Get handles GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
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

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter := employee.Filter{
		Search: c.Query("search"),
		Page:   p.Page,
		Size:   p.Size,
	}

	for name, dst := range map[string]**uint{
		"org_unit_id":      &filter.OrgUnitID,
		"position_id":      &filter.PositionID,
		"profile_id":       &filter.ProfileID,
		"employee_type_id": &filter.EmployeeTypeID,
		"agile_team_id":    &filter.AgileTeamID,
	} {
		v, err := utils.QueryUint(c, name)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		*dst = v
	}

	if raw := c.Query("status"); raw != "" {
		status := employee.Status(raw)
		if !status.IsValid() {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update employee", "id", id, "error", err)
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

// ChangeStatus handles PATCH /employees/:id/status
func (h *EmployeeHandler) ChangeStatus(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangeEmployeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change employee status", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Delete handles DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
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

// Stats handles GET /employees/stats
//
//	@Summary		Employee headcount overview
//	@Description	Total number of employees with a breakdown by employment status
//	@Tags			employees
//	@Produce		json
//	@Success		200	{object}	dto.EmployeeStatsDTO
//	@Router			/employees/stats [get]
func (h *EmployeeHandler) Stats(c *gin.Context) {
	result, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
