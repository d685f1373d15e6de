package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/pagination"
	"github.com/indianbuddy/personal-finance-manager/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Fields are passed through as entered; the ledger validates them.
type CreateTransactionRequest struct {
	Amount      RawValue `json:"amount" swaggertype:"string" example:"250.50"`
	Category    string   `json:"category" example:"Groceries/Sabzi"`
	Date        string   `json:"date" example:"2025-07-31"`
	Description string   `json:"description" binding:"max=500" example:"Weekly vegetables"`
}

// TransactionListQuery holds the optional list filters.
type TransactionListQuery struct {
	Type     string `form:"type" binding:"omitempty,transaction_type"`
	Category string `form:"category" binding:"max=100"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. The type follows from the category.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid amount, category or date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	tx, err := h.ledgerService.AddTransaction(c.Request.Context(), ledger.Input{
		Amount:      string(req.Amount),
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// ListTransactions handles the paginated transaction list
// @Summary     List transactions
// @Description Get transactions, most recent first, with optional filters
// @Tags        transactions
// @Produce     json
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by type (income, expense)"
// @Param       category  query string false "Filter by category name"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var query TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter := services.TransactionFilter{Category: query.Category}
	if query.Type != "" {
		t := models.TransactionType(query.Type)
		filter.Type = &t
	}

	c.JSON(http.StatusOK, h.ledgerService.ListTransactions(page, filter))
}

// RecentTransactions handles the formatted recent list
// @Summary     Recent transactions
// @Description Newest transactions with icon, signed amount and relative date
// @Tags        transactions
// @Produce     json
// @Success     200 {object} services.RecentTransactions
// @Router      /transactions/recent [get]
func (h *TransactionHandler) RecentTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.RecentTransactions())
}

// GetTransaction handles the retrieval of a single transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.ledgerService.GetTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}
