package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/application/organization/dto"
	"rolehub/internal/application/organization/services"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// AgileHandler serves the agile structure: tribes, products and teams.
type AgileHandler struct {
	service *services.AgileService
	logger  logger.Interface
}

func NewAgileHandler(service *services.AgileService) *AgileHandler {
	return &AgileHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// CreateTribe handles POST /tribes
func (h *AgileHandler) CreateTribe(c *gin.Context) {
	var req dto.CreateTribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tribe", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateTribe(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTribes handles GET /tribes
func (h *AgileHandler) ListTribes(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, total, err := h.service.ListTribes(c.Request.Context(), p.Page, p.Size)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p)
}

// CreateProduct handles POST /products
func (h *AgileHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListProducts handles GET /products
func (h *AgileHandler) ListProducts(c *gin.Context) {
	tribeID, err := utils.QueryUint(c, "tribe_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListProducts(c.Request.Context(), tribeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateAgileTeam handles POST /agile-teams
func (h *AgileHandler) CreateAgileTeam(c *gin.Context) {
	var req dto.CreateAgileTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create agile team", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateAgileTeam(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListAgileTeams handles GET /agile-teams
func (h *AgileHandler) ListAgileTeams(c *gin.Context) {
	productID, err := utils.QueryUint(c, "product_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListAgileTeams(c.Request.Context(), productID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
