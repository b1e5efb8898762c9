package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"budget_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromEstimation(t *testing.T) {
	now := time.Now().UTC()
	e := entities.EstimationRecord{
		ID:               "est-1",
		BudgetLineItemID: "bli-1",
		EstimateFields: entities.EstimateFields{
			ProposedEstimate: decimal.RequireFromString("1250.50"),
		},
		Status:       entities.StatusUnderApproval,
		CurrentLevel: entities.RoleApprover,
		Remarks: []entities.Remark{
			{ID: "r-1", AuthorID: "verifier001", Role: entities.RoleVerifier, Action: entities.ActionSubmit, Text: "ok", CreatedAt: now},
		},
		CreatedBy: "creator001",
		CreatedAt: now,
		UpdatedAt: now,
		Version:   3,
	}

	res := FromEstimation(e)
	if res.ID != "est-1" || res.BudgetLineItemID != "bli-1" || res.Version != 3 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "under_approval" || res.StatusLabel != entities.StatusUnderApproval.Label() || res.CurrentLevel != "approver" {
		t.Fatalf("unexpected workflow fields: %+v", res)
	}
	if len(res.Remarks) != 1 || res.Remarks[0].Role != "verifier" || res.Remarks[0].Action != "submit" {
		t.Fatalf("unexpected remarks: %+v", res.Remarks)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"proposed_estimate":"1250.5"`) {
		t.Fatalf("expected decimal rendered as string, got %s", body)
	}
}

func TestFromEstimations_Empty(t *testing.T) {
	res := FromEstimations(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}

func TestFromSession(t *testing.T) {
	s := entities.Session{
		ID:         "sess-1",
		UserID:     "verifier001",
		Roles:      []entities.Role{entities.RoleVerifier},
		ActiveRole: entities.RoleVerifier,
		Token:      "tok",
	}
	res := FromSession(s)
	if res.Token != "" {
		t.Fatalf("token leaked into session response")
	}
	if res.LandingRoute != "/budget/verification" || res.ActiveRole != "verifier" {
		t.Fatalf("unexpected session response: %+v", res)
	}
	if FromLogin(s).Token != "tok" {
		t.Fatalf("expected login response to carry the token")
	}
}

func TestFromBudgetLineItems(t *testing.T) {
	res := FromBudgetLineItems([]entities.BudgetLineItem{{ID: "bli-1", CeilingLimit: decimal.NewFromInt(10)}})
	if len(res) != 1 || res[0].ID != "bli-1" || !res[0].CeilingLimit.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected line items: %+v", res)
	}
}
