package response

import (
	"time"

	"budget_portal/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type RemarkResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type EstimationResponse struct {
	ID                 string           `json:"id"`
	BudgetLineItemID   string           `json:"budget_line_item_id"`
	ActualPreviousYear decimal.Decimal  `json:"actual_previous_year" swaggertype:"string"`
	BudgetCurrentYear  decimal.Decimal  `json:"budget_current_year" swaggertype:"string"`
	RevisedEstimate    decimal.Decimal  `json:"revised_estimate" swaggertype:"string"`
	ProposedEstimate   decimal.Decimal  `json:"proposed_estimate" swaggertype:"string"`
	Status             string           `json:"status"`
	StatusLabel        string           `json:"status_label"`
	CurrentLevel       string           `json:"current_level"`
	Remarks            []RemarkResponse `json:"remarks"`
	CreatedBy          string           `json:"created_by"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	Version            int64            `json:"version"`
}

func FromEstimation(e entities.EstimationRecord) EstimationResponse {
	return EstimationResponse{
		ID:                 e.ID,
		BudgetLineItemID:   e.BudgetLineItemID,
		ActualPreviousYear: e.ActualPreviousYear,
		BudgetCurrentYear:  e.BudgetCurrentYear,
		RevisedEstimate:    e.RevisedEstimate,
		ProposedEstimate:   e.ProposedEstimate,
		Status:             string(e.Status),
		StatusLabel:        e.Status.Label(),
		CurrentLevel:       string(e.CurrentLevel),
		Remarks: lo.Map(e.Remarks, func(r entities.Remark, _ int) RemarkResponse {
			return RemarkResponse{
				ID:        r.ID,
				AuthorID:  r.AuthorID,
				Role:      string(r.Role),
				Action:    string(r.Action),
				Text:      r.Text,
				CreatedAt: r.CreatedAt,
			}
		}),
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Version:   e.Version,
	}
}

func FromEstimations(records []entities.EstimationRecord) []EstimationResponse {
	return lo.Map(records, func(r entities.EstimationRecord, _ int) EstimationResponse {
		return FromEstimation(r)
	})
}
