package entities

import "github.com/shopspring/decimal"

// BudgetLineItem is a sanctioned head of account. It is seeded once and never
// mutated; every role reads it.
type BudgetLineItem struct {
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
	CeilingLimit  decimal.Decimal `json:"ceiling_limit"`
}
