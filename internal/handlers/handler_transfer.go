package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/savdoplus/savdo_backend/internal/middleware"
)

// transferHandler handles multi-record money movements.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers the currency transfer and dealer refund routes.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("/currency", h.transferCurrency)
		transfers.POST("/dealer-refund", h.dealerRefund)
	}
}

// transferCurrency godoc
// @Summary Exchange money between two accounts of different currencies
// @Description Records both legs of the exchange atomically at the supplied rate (1 USD = rate UZS). Both legs are created already approved
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid rate, same currency or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient balance on the source account"
// @Failure 500 {object} map[string]string "Failed to transfer"
// @Security BearerAuth
// @Router /transfers/currency [post]
func (h *transferHandler) transferCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res, err := h.transferService.TransferCurrency(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to transfer")
		return
	}

	logger.Info("Currency transfer recorded",
		slog.String("source_transaction_id", res.SourceTransactionID),
		slog.String("target_transaction_id", res.TargetTransactionID),
	)
	c.JSON(http.StatusCreated, res)
}

// dealerRefund godoc
// @Summary Refund money to a dealer
// @Description Pays money back to a dealer from one of our accounts and reduces the dealer's debt in the same currency, atomically
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   refund body dto.DealerRefundRequest true "Refund details"
// @Success 201 {object} dto.DealerRefundResponse
// @Failure 400 {object} map[string]string "Currency mismatch or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dealer or account not found"
// @Failure 422 {object} map[string]string "Insufficient balance on the paying account"
// @Failure 500 {object} map[string]string "Failed to refund dealer"
// @Security BearerAuth
// @Router /transfers/dealer-refund [post]
func (h *transferHandler) dealerRefund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DealerRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DealerRefund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res, err := h.transferService.DealerRefund(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to refund dealer")
		return
	}

	logger.Info("Dealer refund recorded",
		slog.String("transaction_id", res.TransactionID),
		slog.String("dealer_id", req.DealerID),
	)
	c.JSON(http.StatusCreated, res)
}
