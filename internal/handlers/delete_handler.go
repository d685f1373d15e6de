package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indianbuddy/personal-finance-manager/internal/services"
)

// DeleteHandler drives the two-phase delete: a request marks a transaction,
// and a later confirm or cancel resolves it.
type DeleteHandler struct {
	ledgerService services.LedgerServicer
}

// NewDeleteHandler creates a new DeleteHandler.
func NewDeleteHandler(ledgerService services.LedgerServicer) *DeleteHandler {
	return &DeleteHandler{ledgerService: ledgerService}
}

// DeleteRequest marks a transaction for deletion.
type DeleteRequest struct {
	TransactionID int64 `json:"transaction_id" binding:"required,min=1" example:"4"`
}

// RequestDelete handles marking a transaction for deletion
// @Summary     Request a delete
// @Description Mark a transaction as the pending delete target, replacing any earlier one
// @Tags        deletes
// @Accept      json
// @Produce     json
// @Param       request body DeleteRequest true "Target transaction"
// @Success     202 {object} services.DeleteStatus
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /delete-requests [post]
func (h *DeleteHandler) RequestDelete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	c.JSON(http.StatusAccepted, h.ledgerService.RequestDelete(req.TransactionID))
}

// PendingDelete handles reading the delete state
// @Summary     Pending delete
// @Tags        deletes
// @Produce     json
// @Success     200 {object} services.DeleteStatus
// @Router      /delete-requests/pending [get]
func (h *DeleteHandler) PendingDelete(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.PendingDelete())
}

// ConfirmDelete handles confirming the pending delete
// @Summary     Confirm delete
// @Description Remove the pending target. Reports removed=false when nothing was pending or the target is gone.
// @Tags        deletes
// @Produce     json
// @Success     200 {object} services.DeleteResult
// @Router      /delete-requests/confirm [post]
func (h *DeleteHandler) ConfirmDelete(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.ConfirmDelete(c.Request.Context()))
}

// CancelDelete handles discarding the pending delete
// @Summary     Cancel delete
// @Tags        deletes
// @Produce     json
// @Success     200 {object} services.DeleteResult
// @Router      /delete-requests [delete]
func (h *DeleteHandler) CancelDelete(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.CancelDelete())
}
