package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/application/rolemodel/services"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// StatsHandler serves the reporting endpoints over profiles and grants.
type StatsHandler struct {
	service *services.StatsService
	logger  logger.Interface
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// ProfileSummary handles GET /role-profiles/:id/summary
//
//	@Summary		Profile reach summary
//	@Description	Report how many employees a profile matches and how many accesses it declares
//	@Tags			stats
//	@Produce		json
//	@Param			id	path		int	true	"Role profile ID"
//	@Success		200	{object}	dto.ProfileSummaryDTO
//	@Failure		404	{object}	utils.ErrorInfo
//	@Router			/role-profiles/{id}/summary [get]
func (h *StatsHandler) ProfileSummary(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ProfileSummary(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ModelStats handles GET /role-models/:id/stats
//
//	@Summary		Role model statistics
//	@Description	Aggregate coverage over every profile of a role model
//	@Tags			stats
//	@Produce		json
//	@Param			id	path		int	true	"Role model ID"
//	@Success		200	{object}	dto.ModelStatsDTO
//	@Failure		404	{object}	utils.ErrorInfo
//	@Router			/role-models/{id}/stats [get]
func (h *StatsHandler) ModelStats(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ModelStats(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// AccessStats handles GET /stats/accesses
//
//	@Summary		Access usage statistics
//	@Description	Report catalog-wide grant usage, including unused and overused accesses
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	dto.AccessStatsDTO
//	@Router			/stats/accesses [get]
func (h *StatsHandler) AccessStats(c *gin.Context) {
	result, err := h.service.AccessStats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
