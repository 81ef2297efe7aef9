package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/dto"
)

// dealerHandler exposes the finance core's surface over dealers.
type dealerHandler struct {
	dealerService portssvc.DealerSvcFacade
}

func newDealerHandler(ds portssvc.DealerSvcFacade) *dealerHandler {
	return &dealerHandler{dealerService: ds}
}

func registerDealerRoutes(rg *gin.RouterGroup, dealerService portssvc.DealerSvcFacade) {
	h := newDealerHandler(dealerService)
	rg.POST("/dealers", h.createDealer)
	rg.GET("/dealers/:id/debt", h.getDealerDebt)
}

// createDealer godoc
// @Summary Register a dealer
// @Description Creates a dealer record with zero debt in both currencies
// @Tags dealers
// @Accept  json
// @Produce  json
// @Param   dealer body dto.CreateDealerRequest true "Dealer to register"
// @Success 201 {object} dto.DealerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Dealer already exists"
// @Failure 500 {object} map[string]string "Failed to create dealer"
// @Security BearerAuth
// @Router /dealers [post]
func (h *dealerHandler) createDealer(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	dealer, err := h.dealerService.CreateDealer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create dealer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDealerResponse(dealer))
}

// getDealerDebt godoc
// @Summary Get a dealer's outstanding debt
// @Description Returns the dealer's debt balances; pass ?currency= for a single figure
// @Tags dealers
// @Produce  json
// @Param   id path string true "Dealer ID"
// @Param   currency query string false "Currency code (USD or UZS)"
// @Success 200 {object} dto.DealerDebtResponse
// @Failure 400 {object} map[string]string "Unknown currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dealer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve dealer"
// @Security BearerAuth
// @Router /dealers/{id}/debt [get]
func (h *dealerHandler) getDealerDebt(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	dealerID := c.Param("id")
	if currency := c.Query("currency"); currency != "" {
		debt, err := h.dealerService.GetDealerDebt(c.Request.Context(), dealerID, domain.CurrencyCode(currency))
		if err != nil {
			respondError(c, err, "Failed to retrieve dealer debt")
			return
		}
		c.JSON(http.StatusOK, dto.DealerCurrencyDebtResponse{
			DealerID:     dealerID,
			CurrencyCode: currency,
			Debt:         debt,
		})
		return
	}

	dealer, err := h.dealerService.GetDealerByID(c.Request.Context(), dealerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve dealer")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealerDebtResponse(dealer))
}
