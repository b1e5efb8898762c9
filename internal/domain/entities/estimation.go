package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EstimateFields are the editable amounts of an estimation.
type EstimateFields struct {
	ActualPreviousYear decimal.Decimal `json:"actual_previous_year"`
	BudgetCurrentYear  decimal.Decimal `json:"budget_current_year"`
	RevisedEstimate    decimal.Decimal `json:"revised_estimate"`
	ProposedEstimate   decimal.Decimal `json:"proposed_estimate"`
}

// HasNegative reports whether any amount is below zero.
func (f EstimateFields) HasNegative() bool {
	for _, v := range []decimal.Decimal{f.ActualPreviousYear, f.BudgetCurrentYear, f.RevisedEstimate, f.ProposedEstimate} {
		if v.IsNegative() {
			return true
		}
	}
	return false
}

// Remark is an append-only note left by one user acting in one role.
type Remark struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Role      Role      `json:"role"`
	Action    Action    `json:"action"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// EstimationRecord is the budget estimate prepared against one line item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_line_item_id-index): budget_line_item_id
//
// Status and CurrentLevel always form one of the pairs accepted by
// workflow.ValidPair. Version increases on every successful replace.
type EstimationRecord struct {
	ID               string `json:"id"`
	BudgetLineItemID string `json:"budget_line_item_id"`
	EstimateFields

	Status       Status    `json:"status"`
	CurrentLevel Role      `json:"current_level"`
	Remarks      []Remark  `json:"remarks"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int64     `json:"version"`
}

// Clone returns a copy whose remark slice is not shared.
func (r EstimationRecord) Clone() EstimationRecord {
	out := r
	if r.Remarks != nil {
		out.Remarks = make([]Remark, len(r.Remarks))
		copy(out.Remarks, r.Remarks)
	}
	return out
}

// RecordFilter narrows listRecords. Empty fields match everything.
type RecordFilter struct {
	Level            Role
	Status           Status
	BudgetLineItemID string
}

func (f RecordFilter) Matches(r EstimationRecord) bool {
	if f.Level != "" && r.CurrentLevel != f.Level {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.BudgetLineItemID != "" && r.BudgetLineItemID != f.BudgetLineItemID {
		return false
	}
	return true
}

// SortRecords orders by creation time, then id.
func SortRecords(records []EstimationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}
