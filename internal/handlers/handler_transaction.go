package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/savdoplus/savdo_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for ledger transactions and their
// approval lifecycle.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
		txns.POST("/:id/submit", h.submitTransaction)
		txns.POST("/:id/approve", h.approveTransaction)
		txns.POST("/:id/reject", h.rejectTransaction)
		txns.POST("/:id/cancel", h.cancelTransaction)
		txns.GET("/:id/audit", h.listAuditTrail)
	}
}

func toTransactionResultResponse(res *portsrepo.TransactionMutationResult) dto.TransactionResultResponse {
	return dto.TransactionResultResponse{
		Transaction:           dto.ToTransactionResponse(&res.Transaction),
		AccountBalance:        res.AccountBalance,
		RelatedAccountBalance: res.RelatedAccountBalance,
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a DRAFT income or expense transaction. Exchange legs are created via the transfer endpoint
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account, dealer or category not found"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.TransactionType)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with cursor pagination. Filterable by account, dealer, category, status, type and date range
// @Tags transactions
// @Produce  json
// @Param   accountID query string false "Filter by account"
// @Param   dealerID query string false "Filter by dealer"
// @Param   categoryID query string false "Filter by category"
// @Param   status query string false "Filter by status"
// @Param   type query string false "Filter by type"
// @Param   dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   limit query int false "Page size (default 50, max 200)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if _, ok := mustUserID(c); !ok {
		return
	}

	txns, nextToken, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	})
}

// updateTransaction godoc
// @Summary Edit a transaction
// @Description Edits a transaction in any status. Editing an approved transaction atomically swaps its balance effect; exchange legs change only as a pair and cannot be edited here
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResultResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res, err := h.ledgerService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, toTransactionResultResponse(res))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction. Deleting an approved transaction reverses its applied balance effect; deleting an exchange leg removes both legs of the pair. Audit entries survive the deletion
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res, err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, toTransactionResultResponse(res))
}

// submitTransaction godoc
// @Summary Submit a draft transaction for approval
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not in DRAFT"
// @Failure 500 {object} map[string]string "Failed to submit transaction"
// @Security BearerAuth
// @Router /transactions/{id}/submit [post]
func (h *transactionHandler) submitTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.SubmitTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to submit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// approveTransaction godoc
// @Summary Approve a transaction
// @Description Approves a DRAFT or PENDING transaction and applies its effect to the account balance. Approving twice is a no-op
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction cannot be approved from its current status"
// @Failure 500 {object} map[string]string "Failed to approve transaction"
// @Security BearerAuth
// @Router /transactions/{id}/approve [post]
func (h *transactionHandler) approveTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res, err := h.ledgerService.ApproveTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to approve transaction")
		return
	}
	logger.Info("Transaction approved",
		slog.String("transaction_id", res.Transaction.TransactionID),
		slog.Bool("already_approved", res.NoOp),
	)
	c.JSON(http.StatusOK, toTransactionResultResponse(res))
}

// rejectTransaction godoc
// @Summary Reject a transaction
// @Description Rejects a DRAFT or PENDING transaction. Rejection is terminal and never touches balances
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction cannot be rejected from its current status"
// @Failure 500 {object} map[string]string "Failed to reject transaction"
// @Security BearerAuth
// @Router /transactions/{id}/reject [post]
func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.RejectTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to reject transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// cancelTransaction godoc
// @Summary Cancel an approved transaction
// @Description Cancels an APPROVED transaction, reversing exactly the effect its approval applied. Cancelling an exchange leg cancels both legs of the pair
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Only approved transactions can be cancelled"
// @Failure 500 {object} map[string]string "Failed to cancel transaction"
// @Security BearerAuth
// @Router /transactions/{id}/cancel [post]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res, err := h.ledgerService.CancelTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to cancel transaction")
		return
	}
	c.JSON(http.StatusOK, toTransactionResultResponse(res))
}

// listAuditTrail godoc
// @Summary List a transaction's audit trail
// @Description Returns every recorded action on the transaction, oldest first. Entries survive transaction deletion
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to list audit trail"
// @Security BearerAuth
// @Router /transactions/{id}/audit [get]
func (h *transactionHandler) listAuditTrail(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	entries, err := h.ledgerService.ListAuditTrail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list audit trail")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}
