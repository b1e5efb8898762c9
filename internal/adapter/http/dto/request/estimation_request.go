package request

import (
	"strings"

	"budget_portal/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRoleFilter   = errors.New("invalid role filter")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

// EstimateFieldsRequest carries the four amount columns.
type EstimateFieldsRequest struct {
	ActualPreviousYear *decimal.Decimal `json:"actual_previous_year" binding:"required" swaggertype:"string" example:"402000.00"`
	BudgetCurrentYear  *decimal.Decimal `json:"budget_current_year" binding:"required" swaggertype:"string" example:"450000.00"`
	RevisedEstimate    *decimal.Decimal `json:"revised_estimate" binding:"required" swaggertype:"string" example:"455000.00"`
	ProposedEstimate   *decimal.Decimal `json:"proposed_estimate" binding:"required" swaggertype:"string" example:"480000.00"`
}

func (r EstimateFieldsRequest) ToFields() entities.EstimateFields {
	deref := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}
	return entities.EstimateFields{
		ActualPreviousYear: deref(r.ActualPreviousYear),
		BudgetCurrentYear:  deref(r.BudgetCurrentYear),
		RevisedEstimate:    deref(r.RevisedEstimate),
		ProposedEstimate:   deref(r.ProposedEstimate),
	}
}

type CreateEstimationRequest struct {
	LineItemID string `json:"line_item_id" binding:"required" example:"bli-2054-13"`
	EstimateFieldsRequest
	Remark string `json:"remark" example:"Includes new printer lease."`
}

func (r CreateEstimationRequest) ResolveLineItemID() string {
	return strings.TrimSpace(r.LineItemID)
}

// SaveEstimationRequest is the body of a field edit; it runs the save action.
type SaveEstimationRequest struct {
	EstimateFieldsRequest
	Remark string `json:"remark"`
}

type ActionRequest struct {
	Action string `json:"action" binding:"required" example:"submit"`
	Remark string `json:"remark" example:"Checked against last year's actuals."`
}

func (r ActionRequest) ResolveAction() (entities.Action, bool) {
	return entities.ParseAction(r.Action)
}

// ListEstimationsQuery is bound from the query string of GET /estimations.
type ListEstimationsQuery struct {
	Role       string `form:"role"`
	Status     string `form:"status"`
	LineItemID string `form:"line_item_id"`
	Mine       bool   `form:"mine"`
}

// ToFilter builds the record filter. With mine set, the active role replaces
// any explicit role so the caller sees its own queue.
func (q ListEstimationsQuery) ToFilter(activeRole entities.Role) (entities.RecordFilter, error) {
	f := entities.RecordFilter{BudgetLineItemID: strings.TrimSpace(q.LineItemID)}
	if v := strings.TrimSpace(q.Role); v != "" {
		role, ok := entities.ParseRole(v)
		if !ok {
			return entities.RecordFilter{}, ErrInvalidRoleFilter
		}
		f.Level = role
	}
	if v := strings.TrimSpace(q.Status); v != "" {
		status, ok := entities.ParseStatus(v)
		if !ok {
			return entities.RecordFilter{}, ErrInvalidStatusFilter
		}
		f.Status = status
	}
	if q.Mine {
		f.Level = activeRole
	}
	return f, nil
}
