package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	ledgerService services.LedgerServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(ledgerService services.LedgerServicer) *CategoryHandler {
	return &CategoryHandler{ledgerService: ledgerService}
}

// CategoryQuery filters the category list.
type CategoryQuery struct {
	Type string `form:"type" binding:"omitempty,category_type"`
}

// ListCategories handles listing the configured categories
// @Summary     List categories
// @Description Income categories first, then expense categories, each with its icon
// @Tags        categories
// @Produce     json
// @Param       type query string false "Filter by type (income, expense)"
// @Success     200 {array} models.Category
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var query CategoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var filter *models.CategoryType
	if query.Type != "" {
		t := models.CategoryType(query.Type)
		filter = &t
	}

	c.JSON(http.StatusOK, gin.H{"categories": h.ledgerService.Categories(filter)})
}
