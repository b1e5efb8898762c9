package response

import (
	"budget_portal/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type BudgetLineItemResponse struct {
	ID            string          `json:"id"`
	FinancialYear string          `json:"financial_year"`
	Department    string          `json:"department"`
	DDOCode       string          `json:"ddo_code"`
	DDOName       string          `json:"ddo_name"`
	MajorHead     string          `json:"major_head"`
	SubMajorHead  string          `json:"sub_major_head"`
	MinorHead     string          `json:"minor_head"`
	SubHead       string          `json:"sub_head"`
	DetailedHead  string          `json:"detailed_head"`
	ObjectHead    string          `json:"object_head"`
	Scheme        string          `json:"scheme"`
	CeilingLimit  decimal.Decimal `json:"ceiling_limit" swaggertype:"string"`
}

func FromBudgetLineItem(li entities.BudgetLineItem) BudgetLineItemResponse {
	return BudgetLineItemResponse{
		ID:            li.ID,
		FinancialYear: li.FinancialYear,
		Department:    li.Department,
		DDOCode:       li.DDOCode,
		DDOName:       li.DDOName,
		MajorHead:     li.MajorHead,
		SubMajorHead:  li.SubMajorHead,
		MinorHead:     li.MinorHead,
		SubHead:       li.SubHead,
		DetailedHead:  li.DetailedHead,
		ObjectHead:    li.ObjectHead,
		Scheme:        li.Scheme,
		CeilingLimit:  li.CeilingLimit,
	}
}

func FromBudgetLineItems(items []entities.BudgetLineItem) []BudgetLineItemResponse {
	return lo.Map(items, func(li entities.BudgetLineItem, _ int) BudgetLineItemResponse {
		return FromBudgetLineItem(li)
	})
}
