package api

import (
	"net/http"

	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	priceService service.PriceService
}

func NewPriceHandler(priceService service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// @Summary Latest crypto quotes
// @Description Returns the most recent snapshot from the 60s poll; may be stale if the upstream API is down
// @Tags Prices
// @Produce json
// @Success 200 {array} models.PriceQuote "Quotes"
// @Router /prices [get]
func (h *PriceHandler) GetQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, h.priceService.GetQuotes())
}
