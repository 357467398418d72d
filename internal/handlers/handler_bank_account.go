package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler handles HTTP requests related to bank accounts and their ledgers.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

// newBankAccountHandler creates a new bankAccountHandler.
func newBankAccountHandler(svc portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{
		bankAccountService: svc,
	}
}

// RegisterBankAccountRoutes registers routes related to bank accounts.
func RegisterBankAccountRoutes(rg *gin.RouterGroup, svc portssvc.BankAccountSvcFacade) {
	registerValidators()
	h := newBankAccountHandler(svc)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:id", h.getBankAccount)
		accounts.PUT("/:id", h.updateBankAccount)
		accounts.PUT("/:id/initial-balance", h.setInitialBalance)
		accounts.POST("/:id/activate", h.activateBankAccount)
		accounts.POST("/:id/deactivate", h.deactivateBankAccount)
		accounts.POST("/:id/income", h.recordIncome)
		accounts.POST("/:id/expenses", h.recordExpense)
		accounts.GET("/:id/transactions", h.listTransactions)
	}
}

// createBankAccount godoc
// @Summary Open a new bank account
// @Description Registers a bank account for the logged-in user with a zero balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Account number already registered"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create bank account", slog.String("currency_code", req.CurrencyCode))

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Description Retrieves every bank account owned by the logged-in user
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListBankAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list bank accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank accounts")
		return
	}

	logger.Info("Bank accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	accountID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), accountID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// updateBankAccount godoc
// @Summary Rename a bank account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateBankAccountRequest true "New names"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	accountID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), accountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// setInitialBalance godoc
// @Summary Seed the balance of an account
// @Description Only allowed while the account has no transactions
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   balance body dto.SetInitialBalanceRequest true "Opening balance"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Ledger already has transactions or currency mismatch"
// @Security BearerAuth
// @Router /accounts/{id}/initial-balance [put]
func (h *bankAccountHandler) setInitialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	accountID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var req dto.SetInitialBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetInitialBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankAccountService.SetInitialBalance(c.Request.Context(), accountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to set initial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// activateBankAccount godoc
// @Summary Reactivate a bank account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 422 {object} map[string]string "Account already active"
// @Security BearerAuth
// @Router /accounts/{id}/activate [post]
func (h *bankAccountHandler) activateBankAccount(c *gin.Context) {
	h.toggle(c, true)
}

// deactivateBankAccount godoc
// @Summary Deactivate a bank account
// @Description An inactive account rejects every posting
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 422 {object} map[string]string "Account already inactive"
// @Security BearerAuth
// @Router /accounts/{id}/deactivate [post]
func (h *bankAccountHandler) deactivateBankAccount(c *gin.Context) {
	h.toggle(c, false)
}

func (h *bankAccountHandler) toggle(c *gin.Context, activate bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	accountID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	op := h.bankAccountService.DeactivateBankAccount
	if activate {
		op = h.bankAccountService.ActivateBankAccount
	}
	account, err := op(ctx, accountID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to change bank account status")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// recordIncome godoc
// @Summary Record income
// @Description Posts income to the account under one of the user's INCOME categories
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   transaction body dto.RecordTransactionRequest true "Posting details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or category type mismatch"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Failure 422 {object} map[string]string "Inactive account or category"
// @Security BearerAuth
// @Router /accounts/{id}/income [post]
func (h *bankAccountHandler) recordIncome(c *gin.Context) {
	h.record(c, true)
}

// recordExpense godoc
// @Summary Record an expense
// @Description Posts an expense under one of the user's EXPENSE categories; never overdraws
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   transaction body dto.RecordTransactionRequest true "Posting details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or category type mismatch"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Failure 422 {object} map[string]string "Insufficient funds or inactive account"
// @Security BearerAuth
// @Router /accounts/{id}/expenses [post]
func (h *bankAccountHandler) recordExpense(c *gin.Context) {
	h.record(c, false)
}

func (h *bankAccountHandler) record(c *gin.Context, income bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	accountID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	op := h.bankAccountService.RecordExpense
	if income {
		op = h.bankAccountService.RecordIncome
	}
	tx, err := op(ctx, accountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*tx))
}

// listTransactions godoc
// @Summary List the ledger of an account
// @Description Newest first, optionally filtered by type
// @Tags transactions
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id}/transactions [get]
func (h *bankAccountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	accountID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txs, total, err := h.bankAccountService.ListTransactions(c.Request.Context(), accountID, params, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txs),
		Total:        total,
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
}
