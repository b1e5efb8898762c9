package seed

import (
	_ "embed"
	"os"
	"strings"
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/domain/workflow"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Data is the parsed, validated content of a seed file.
type Data struct {
	Users       []entities.User
	LineItems   []entities.BudgetLineItem
	Estimations []entities.EstimationRecord
}

type seedFile struct {
	Users []struct {
		ID          string   `yaml:"id"`
		Credential  string   `yaml:"credential"`
		DisplayName string   `yaml:"display_name"`
		Roles       []string `yaml:"roles"`
		DDOCode     string   `yaml:"ddo_code"`
	} `yaml:"users"`
	LineItems []struct {
		ID            string `yaml:"id"`
		FinancialYear string `yaml:"financial_year"`
		Department    string `yaml:"department"`
		DDOCode       string `yaml:"ddo_code"`
		DDOName       string `yaml:"ddo_name"`
		MajorHead     string `yaml:"major_head"`
		SubMajorHead  string `yaml:"sub_major_head"`
		MinorHead     string `yaml:"minor_head"`
		SubHead       string `yaml:"sub_head"`
		DetailedHead  string `yaml:"detailed_head"`
		ObjectHead    string `yaml:"object_head"`
		Scheme        string `yaml:"scheme"`
		CeilingLimit  string `yaml:"ceiling_limit"`
	} `yaml:"line_items"`
	Estimations []struct {
		ID                 string `yaml:"id"`
		BudgetLineItemID   string `yaml:"budget_line_item_id"`
		ActualPreviousYear string `yaml:"actual_previous_year"`
		BudgetCurrentYear  string `yaml:"budget_current_year"`
		RevisedEstimate    string `yaml:"revised_estimate"`
		ProposedEstimate   string `yaml:"proposed_estimate"`
		Status             string `yaml:"status"`
		CurrentLevel       string `yaml:"current_level"`
		CreatedBy          string `yaml:"created_by"`
		CreatedAt          string `yaml:"created_at"`
		Remarks            []struct {
			AuthorID  string `yaml:"author_id"`
			Role      string `yaml:"role"`
			Action    string `yaml:"action"`
			Text      string `yaml:"text"`
			CreatedAt string `yaml:"created_at"`
		} `yaml:"remarks"`
	} `yaml:"estimations"`
}

// Load reads the seed at path, or the embedded sample data when path is empty.
// Credentials are hashed with the given bcrypt cost.
func Load(path string, cost int) (*Data, error) {
	raw := defaultSeed
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read seed %s", path)
		}
		raw = b
	}
	return Parse(raw, cost)
}

func Parse(raw []byte, cost int) (*Data, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "decode seed")
	}

	out := &Data{}
	seenUsers := map[string]bool{}
	for _, u := range f.Users {
		if u.ID == "" || u.Credential == "" {
			return nil, errors.Newf("seed user %q: id and credential are required", u.ID)
		}
		if seenUsers[u.ID] {
			return nil, errors.Newf("seed user %q: duplicate id", u.ID)
		}
		seenUsers[u.ID] = true

		roles := make([]entities.Role, 0, len(u.Roles))
		for _, raw := range u.Roles {
			role, ok := entities.ParseRole(raw)
			if !ok {
				return nil, errors.Newf("seed user %q: unknown role %q", u.ID, raw)
			}
			roles = append(roles, role)
		}
		if len(roles) == 0 {
			return nil, errors.Newf("seed user %q: at least one role is required", u.ID)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Credential), cost)
		if err != nil {
			return nil, errors.Wrapf(err, "hash credential for %q", u.ID)
		}
		out.Users = append(out.Users, entities.User{
			ID:             u.ID,
			CredentialHash: string(hash),
			DisplayName:    u.DisplayName,
			Roles:          roles,
			DDOCode:        u.DDOCode,
		})
	}

	lineItems := map[string]bool{}
	for _, li := range f.LineItems {
		if li.ID == "" || lineItems[li.ID] {
			return nil, errors.Newf("seed line item %q: missing or duplicate id", li.ID)
		}
		lineItems[li.ID] = true
		ceiling, err := decimal.NewFromString(li.CeilingLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "seed line item %q: ceiling_limit", li.ID)
		}
		out.LineItems = append(out.LineItems, entities.BudgetLineItem{
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
			CeilingLimit:  ceiling,
		})
	}

	for _, e := range f.Estimations {
		if !lineItems[e.BudgetLineItemID] {
			return nil, errors.Newf("seed estimation %q: unknown line item %q", e.ID, e.BudgetLineItemID)
		}
		status, _ := entities.ParseStatus(e.Status)
		level, _ := entities.ParseRole(e.CurrentLevel)
		if !workflow.ValidPair(status, level) {
			return nil, errors.Newf("seed estimation %q: invalid status %q at level %q", e.ID, e.Status, e.CurrentLevel)
		}

		fields, err := parseFields(e.ActualPreviousYear, e.BudgetCurrentYear, e.RevisedEstimate, e.ProposedEstimate)
		if err != nil {
			return nil, errors.Wrapf(err, "seed estimation %q", e.ID)
		}

		createdAt, err := parseTime(e.CreatedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "seed estimation %q: created_at", e.ID)
		}
		rec := entities.EstimationRecord{
			ID:               e.ID,
			BudgetLineItemID: e.BudgetLineItemID,
			EstimateFields:   fields,
			Status:           status,
			CurrentLevel:     level,
			Remarks:          []entities.Remark{},
			CreatedBy:        e.CreatedBy,
			CreatedAt:        createdAt,
			UpdatedAt:        createdAt,
		}
		for _, r := range e.Remarks {
			role, _ := entities.ParseRole(r.Role)
			action, _ := entities.ParseAction(r.Action)
			remarkAt, err := parseTime(r.CreatedAt)
			if err != nil {
				return nil, errors.Wrapf(err, "seed estimation %q: remark created_at", e.ID)
			}
			rec.Remarks = append(rec.Remarks, entities.Remark{
				ID:        uuid.NewString(),
				AuthorID:  r.AuthorID,
				Role:      role,
				Action:    action,
				Text:      r.Text,
				CreatedAt: remarkAt,
			})
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		out.Estimations = append(out.Estimations, rec)
	}

	return out, nil
}

func parseFields(values ...string) (entities.EstimateFields, error) {
	parsed := make([]decimal.Decimal, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			parsed[i] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.EstimateFields{}, err
		}
		parsed[i] = d
	}
	f := entities.EstimateFields{
		ActualPreviousYear: parsed[0],
		BudgetCurrentYear:  parsed[1],
		RevisedEstimate:    parsed[2],
		ProposedEstimate:   parsed[3],
	}
	if f.HasNegative() {
		return entities.EstimateFields{}, errors.New("amounts cannot be negative")
	}
	return f, nil
}

// parseTime accepts RFC 3339; an empty value means now.
func parseTime(v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
