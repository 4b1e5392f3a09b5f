// Package harbor exposes the occupancy query endpoints.
package harbor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harbormaster/internal/application/harbor/usecases"
	"harbormaster/internal/interfaces/http/handlers/common"
	"harbormaster/internal/shared/logger"
	"harbormaster/internal/shared/utils"
)

type HarborHandler struct {
	dockViewUC   usecases.GetDockWithShipsExecutor
	haulerViewUC usecases.GetHaulerWithShipsExecutor
	logger       logger.Interface
}

func NewHarborHandler(
	dockViewUC usecases.GetDockWithShipsExecutor,
	haulerViewUC usecases.GetHaulerWithShipsExecutor,
	log logger.Interface,
) *HarborHandler {
	return &HarborHandler{
		dockViewUC:   dockViewUC,
		haulerViewUC: haulerViewUC,
		logger:       log,
	}
}

// GetDockShips handles GET /docks/:id/ships
func (h *HarborHandler) GetDockShips(c *gin.Context) {
	result, err := h.dockViewUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHaulerShips handles GET /haulers/:id/ships
func (h *HarborHandler) GetHaulerShips(c *gin.Context) {
	result, err := h.haulerViewUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
