// Package ship exposes the ship endpoints.
package ship

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/application/ship/usecases"
	"harbormaster/internal/interfaces/http/handlers/common"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
	"harbormaster/internal/shared/utils"
)

type ShipHandler struct {
	createShipUC usecases.CreateShipExecutor
	getShipUC    usecases.GetShipExecutor
	listShipsUC  usecases.ListShipsExecutor
	updateShipUC usecases.UpdateShipExecutor
	logger       logger.Interface
}

func NewShipHandler(
	createShipUC usecases.CreateShipExecutor,
	getShipUC usecases.GetShipExecutor,
	listShipsUC usecases.ListShipsExecutor,
	updateShipUC usecases.UpdateShipExecutor,
	log logger.Interface,
) *ShipHandler {
	return &ShipHandler{
		createShipUC: createShipUC,
		getShipUC:    getShipUC,
		listShipsUC:  listShipsUC,
		updateShipUC: updateShipUC,
		logger:       log,
	}
}

// CreateShip handles POST /ships
func (h *ShipHandler) CreateShip(c *gin.Context) {
	var req dto.CreateShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ship", "error", err)
		common.RespondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.createShipUC.Execute(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ship created successfully")
}

// GetShip handles GET /ships/:id
func (h *ShipHandler) GetShip(c *gin.Context) {
	result, err := h.getShipUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListShips handles GET /ships
func (h *ShipHandler) ListShips(c *gin.Context) {
	p := utils.ParsePagination(c)

	req := dto.ListShipsRequest{
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if dockSID := c.Query("dock_id"); dockSID != "" {
		req.DockSID = &dockSID
	}
	if haulerSID := c.Query("hauler_id"); haulerSID != "" {
		req.HaulerSID = &haulerSID
	}

	result, err := h.listShipsUC.Execute(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateShip handles PUT /ships/:id
func (h *ShipHandler) UpdateShip(c *gin.Context) {
	var req dto.UpdateShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ship", "error", err)
		common.RespondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateShipUC.ExecuteBySID(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ship updated successfully", result)
}
