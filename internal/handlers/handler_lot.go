package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type lotHandler struct {
	lotService portssvc.LotReaderSvc
}

// RegisterLotRoutes registers routes under /lots.
func RegisterLotRoutes(rg *gin.RouterGroup, lots portssvc.LotReaderSvc) {
	h := &lotHandler{lotService: lots}
	rg.GET("/lots/:lotId", h.getLot)
}

// getLot godoc
// @Summary Get a lot with its current balance
// @Tags lots
// @Produce  json
// @Param   lotId path string true "Lot ID"
// @Success 200 {object} dto.SuccessResponse{data=domain.Lot}
// @Failure 404 {object} dto.ErrorResponse "Lot not found"
// @Security BearerAuth
// @Router /lots/{lotId} [get]
func (h *lotHandler) getLot(c *gin.Context) {
	lot, err := h.lotService.GetLotByID(c.Request.Context(), c.Param("lotId"))
	if err != nil {
		respondError(c, err, "getting lot")
		return
	}
	c.JSON(http.StatusOK, dto.OK(lot))
}
