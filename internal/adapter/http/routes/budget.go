package routes

import (
	"budget_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimations = "/estimations"
	PathLineItems   = "/line-items"
)

func addBudgetRoutes(rg *gin.RouterGroup, estimationHandler *handlers.EstimationHandler, lineItemHandler *handlers.BudgetLineItemHandler) {
	estimations := rg.Group(PathEstimations)
	{
		estimations.GET("", estimationHandler.ListEstimations)
		estimations.POST("", estimationHandler.CreateEstimation)
		estimations.GET("/:id", estimationHandler.GetEstimation)
		estimations.PATCH("/:id", estimationHandler.SaveEstimation)
		estimations.POST("/:id/actions", estimationHandler.ApplyAction)
	}

	lineItems := rg.Group(PathLineItems)
	{
		lineItems.GET("", lineItemHandler.ListLineItems)
		lineItems.GET("/:id", lineItemHandler.GetLineItem)
		lineItems.GET("/:id/estimations", lineItemHandler.ListBatch)
	}
}
