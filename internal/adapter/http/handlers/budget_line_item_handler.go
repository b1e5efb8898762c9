package handlers

import (
	"net/http"

	response "budget_portal/internal/adapter/http/dto/response"
	"budget_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BudgetLineItemHandler struct {
	lineItems   usecase.IBudgetLineItemUseCase
	estimations usecase.IEstimationUseCase
}

func NewBudgetLineItemHandler(lineItems usecase.IBudgetLineItemUseCase, estimations usecase.IEstimationUseCase) *BudgetLineItemHandler {
	return &BudgetLineItemHandler{lineItems: lineItems, estimations: estimations}
}

// ListLineItems godoc
// @Summary   List budget line items
// @Tags      line-items
// @Security  Bearer
// @Produce   json
// @Success   200  {array}  response.BudgetLineItemResponse
// @Router    /line-items [get]
func (h *BudgetLineItemHandler) ListLineItems(c *gin.Context) {
	items, err := h.lineItems.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetLineItems(items))
}

// GetLineItem godoc
// @Summary   Get a budget line item
// @Tags      line-items
// @Security  Bearer
// @Produce   json
// @Param     id   path      string  true  "Line item id"
// @Success   200  {object}  response.BudgetLineItemResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /line-items/{id} [get]
func (h *BudgetLineItemHandler) GetLineItem(c *gin.Context) {
	li, err := h.lineItems.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetLineItem(li))
}

// ListBatch godoc
// @Summary   List the batch of a line item
// @Tags      line-items
// @Security  Bearer
// @Produce   json
// @Param     id   path     string  true  "Line item id"
// @Success   200  {array}  response.EstimationResponse
// @Failure   404  {object} pkg.HTTPError
// @Router    /line-items/{id}/estimations [get]
func (h *BudgetLineItemHandler) ListBatch(c *gin.Context) {
	records, err := h.estimations.ListBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimations(records))
}
