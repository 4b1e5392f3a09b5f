// Package hauler exposes the hauler endpoints.
package hauler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harbormaster/internal/application/hauler/dto"
	"harbormaster/internal/application/hauler/usecases"
	"harbormaster/internal/interfaces/http/handlers/common"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
	"harbormaster/internal/shared/utils"
)

type HaulerHandler struct {
	createHaulerUC usecases.CreateHaulerExecutor
	getHaulerUC    usecases.GetHaulerExecutor
	listHaulersUC  usecases.ListHaulersExecutor
	updateHaulerUC usecases.UpdateHaulerExecutor
	logger         logger.Interface
}

func NewHaulerHandler(
	createHaulerUC usecases.CreateHaulerExecutor,
	getHaulerUC usecases.GetHaulerExecutor,
	listHaulersUC usecases.ListHaulersExecutor,
	updateHaulerUC usecases.UpdateHaulerExecutor,
	log logger.Interface,
) *HaulerHandler {
	return &HaulerHandler{
		createHaulerUC: createHaulerUC,
		getHaulerUC:    getHaulerUC,
		listHaulersUC:  listHaulersUC,
		updateHaulerUC: updateHaulerUC,
		logger:         log,
	}
}

// CreateHauler handles POST /haulers
func (h *HaulerHandler) CreateHauler(c *gin.Context) {
	var req dto.CreateHaulerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create hauler", "error", err)
		common.RespondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.createHaulerUC.Execute(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Hauler created successfully")
}

// GetHauler handles GET /haulers/:id
func (h *HaulerHandler) GetHauler(c *gin.Context) {
	result, err := h.getHaulerUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListHaulers handles GET /haulers
func (h *HaulerHandler) ListHaulers(c *gin.Context) {
	p := utils.ParsePagination(c)

	req := dto.ListHaulersRequest{
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.listHaulersUC.Execute(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateHauler handles PUT /haulers/:id
func (h *HaulerHandler) UpdateHauler(c *gin.Context) {
	var req dto.UpdateHaulerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update hauler", "error", err)
		common.RespondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateHaulerUC.ExecuteBySID(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hauler updated successfully", result)
}
