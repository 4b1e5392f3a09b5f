// Package dock exposes the dock endpoints.
package dock

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/application/dock/usecases"
	"harbormaster/internal/interfaces/http/handlers/common"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
	"harbormaster/internal/shared/utils"
)

type DockHandler struct {
	createDockUC usecases.CreateDockExecutor
	getDockUC    usecases.GetDockExecutor
	listDocksUC  usecases.ListDocksExecutor
	updateDockUC usecases.UpdateDockExecutor
	statusUC     usecases.UpdateDockStatusExecutor
	logger       logger.Interface
}

func NewDockHandler(
	createDockUC usecases.CreateDockExecutor,
	getDockUC usecases.GetDockExecutor,
	listDocksUC usecases.ListDocksExecutor,
	updateDockUC usecases.UpdateDockExecutor,
	statusUC usecases.UpdateDockStatusExecutor,
	log logger.Interface,
) *DockHandler {
	return &DockHandler{
		createDockUC: createDockUC,
		getDockUC:    getDockUC,
		listDocksUC:  listDocksUC,
		updateDockUC: updateDockUC,
		statusUC:     statusUC,
		logger:       log,
	}
}

// CreateDock handles POST /docks
func (h *DockHandler) CreateDock(c *gin.Context) {
	var req dto.CreateDockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create dock", "error", err)
		common.RespondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.createDockUC.Execute(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Dock created successfully")
}

// GetDock handles GET /docks/:id
func (h *DockHandler) GetDock(c *gin.Context) {
	result, err := h.getDockUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDocks handles GET /docks
func (h *DockHandler) ListDocks(c *gin.Context) {
	p := utils.ParsePagination(c)

	req := dto.ListDocksRequest{
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	result, err := h.listDocksUC.Execute(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateDock handles PUT /docks/:id
func (h *DockHandler) UpdateDock(c *gin.Context) {
	var req dto.UpdateDockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update dock", "error", err)
		common.RespondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateDockUC.ExecuteBySID(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dock updated successfully", result)
}

// ActivateDock handles POST /docks/:id/activate
func (h *DockHandler) ActivateDock(c *gin.Context) {
	result, err := h.statusUC.ActivateBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dock activated successfully", result)
}

// DeactivateDock handles POST /docks/:id/deactivate
func (h *DockHandler) DeactivateDock(c *gin.Context) {
	result, err := h.statusUC.DeactivateBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dock deactivated successfully", result)
}
