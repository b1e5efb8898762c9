package repository

import (
	"strconv"
	"strings"
	"time"

	"budget_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime reads a stored timestamp; an empty attribute reads as the zero time.
func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, v)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func joinAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// parseFields reads the four stored amounts; an empty attribute reads as zero.
func parseFields(values ...string) (entities.EstimateFields, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.EstimateFields{}, err
		}
		out[i] = d
	}
	return entities.EstimateFields{
		ActualPreviousYear: out[0],
		BudgetCurrentYear:  out[1],
		RevisedEstimate:    out[2],
		ProposedEstimate:   out[3],
	}, nil
}
