package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/dto"
)

// summaryHandler serves derived reports over the ledger.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)
	rg.GET("/summary/cash", h.getCashSummary)
}

// getCashSummary godoc
// @Summary Get the cash summary
// @Description Returns per-account balances with income and expense totals, plus global USD and UZS totals, all from one consistent snapshot
// @Tags summary
// @Produce  json
// @Success 200 {object} dto.CashSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build cash summary"
// @Security BearerAuth
// @Router /summary/cash [get]
func (h *summaryHandler) getCashSummary(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	summary, err := h.summaryService.GetCashSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build cash summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashSummaryResponse(summary))
}
