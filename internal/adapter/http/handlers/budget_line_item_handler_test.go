package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"budget_portal/internal/adapter/http/handlers/mocks"
	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newLineItemRouter(items usecase.IBudgetLineItemUseCase, estimations usecase.IEstimationUseCase) *gin.Engine {
	h := NewBudgetLineItemHandler(items, estimations)
	r := gin.New()
	r.GET("/v1/line-items", h.ListLineItems)
	r.GET("/v1/line-items/:id", h.GetLineItem)
	r.GET("/v1/line-items/:id/estimations", h.ListBatch)
	return r
}

func TestBudgetLineItemHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mocks.NewMockIBudgetLineItemUseCase(ctrl)
		r := newLineItemRouter(items, mocks.NewMockIEstimationUseCase(ctrl))

		items.EXPECT().List(gomock.Any()).Return([]entities.BudgetLineItem{
			{ID: "bli-2054-13", MajorHead: "2054", CeilingLimit: decimal.RequireFromString("650000.00")},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/line-items", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["ceiling_limit"] != "650000" || body[0]["major_head"] != "2054" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mocks.NewMockIBudgetLineItemUseCase(ctrl)
		r := newLineItemRouter(items, mocks.NewMockIEstimationUseCase(ctrl))

		items.EXPECT().GetByID(gomock.Any(), "bli-x").Return(entities.BudgetLineItem{}, usecase.ErrLineItemNotFound)

		w := doJSON(r, http.MethodGet, "/v1/line-items/bli-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "LINE_ITEM_NOT_FOUND" {
			t.Fatalf("expected LINE_ITEM_NOT_FOUND, got %s", got)
		}
	})

	t.Run("batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimations := mocks.NewMockIEstimationUseCase(ctrl)
		r := newLineItemRouter(mocks.NewMockIBudgetLineItemUseCase(ctrl), estimations)

		estimations.EXPECT().ListBatch(gomock.Any(), "bli-2054-13").Return([]entities.EstimationRecord{{ID: "est-0002"}, {ID: "est-0003"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/line-items/bli-2054-13/estimations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("batch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimations := mocks.NewMockIEstimationUseCase(ctrl)
		r := newLineItemRouter(mocks.NewMockIBudgetLineItemUseCase(ctrl), estimations)

		estimations.EXPECT().ListBatch(gomock.Any(), "bli-1").Return(nil, errors.New("db"))

		w := doJSON(r, http.MethodGet, "/v1/line-items/bli-1/estimations", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
