// Package normalize canonicalizes the heterogeneous claim records the
// portal API returns. It is the single source of truth for field aliases
// and status synonyms; nothing downstream re-parses raw values.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/insurai/claimlens/internal/model"
)

// Alias tables, in priority order. The first present field wins.
var (
	statusAliases     = []string{"status", "claimStatus", "state", "verdict"}
	dateAliases       = []string{"claimDate", "created_at"}
	employeeIDAliases = []string{"employeeId", "employee_id"}
	hrIDAliases       = []string{"assignedHrId", "assigned_hr_id"}
	policyIDAliases   = []string{"policyId", "policy_id"}
)

// statusSynonyms maps every spelling seen in the wild onto a canonical
// bucket. Lookup keys are lowercased and trimmed.
var statusSynonyms = map[string]model.StatusBucket{
	"pending":     model.StatusPending,
	"awaiting":    model.StatusPending,
	"open":        model.StatusPending,
	"in_progress": model.StatusPending,
	"in progress": model.StatusPending,
	"submitted":   model.StatusPending,
	"resolved":    model.StatusApproved,
	"approved":    model.StatusApproved,
	"closed":      model.StatusApproved,
	"completed":   model.StatusApproved,
	"settled":     model.StatusApproved,
	"rejected":    model.StatusRejected,
}

// dateLayouts are tried in order when parsing date fields.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Bucket maps a raw status string onto its canonical bucket. Unrecognized
// or empty values land in StatusOther.
func Bucket(raw string) model.StatusBucket {
	if b, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return b
	}
	return model.StatusOther
}

// Claim converts one raw record into its canonical shape. It never fails:
// unparseable amounts become 0, unparseable dates become nil, unknown
// statuses become StatusOther.
func Claim(raw model.RawClaim) model.NormalizedClaim {
	return model.NormalizedClaim{
		ID:           intField(raw, "id"),
		Title:        stringField(raw, "title"),
		Status:       Bucket(firstString(raw, statusAliases)),
		Amount:       amountField(raw, "amount"),
		Date:         firstDate(raw, dateAliases),
		EmployeeID:   firstInt(raw, employeeIDAliases),
		AssignedHRID: firstInt(raw, hrIDAliases),
		PolicyID:     firstInt(raw, policyIDAliases),
		Remarks:      stringField(raw, "remarks"),
		Documents:    stringsField(raw, "documents"),
		FraudFlag:    boolField(raw, "fraudFlag"),
		FraudReason:  stringField(raw, "fraudReason"),
	}
}

// Claims normalizes a whole collection, preserving order.
func Claims(raw []model.RawClaim) []model.NormalizedClaim {
	out := make([]model.NormalizedClaim, len(raw))
	for i, r := range raw {
		out[i] = Claim(r)
	}
	return out
}

func firstString(raw model.RawClaim, aliases []string) string {
	for _, key := range aliases {
		if s := stringField(raw, key); s != "" {
			return s
		}
	}
	return ""
}

func firstInt(raw model.RawClaim, aliases []string) int64 {
	for _, key := range aliases {
		if _, ok := raw[key]; ok {
			if n := intField(raw, key); n != 0 {
				return n
			}
		}
	}
	return 0
}

func firstDate(raw model.RawClaim, aliases []string) *time.Time {
	for _, key := range aliases {
		if t := dateField(raw, key); t != nil {
			return t
		}
	}
	return nil
}

func stringField(raw model.RawClaim, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// amountField coerces an amount to a finite, non-negative float.
func amountField(raw model.RawClaim, key string) float64 {
	var f float64
	switch v := raw[key].(type) {
	case float64:
		f = v
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func intField(raw model.RawClaim, key string) int64 {
	switch v := raw[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func boolField(raw model.RawClaim, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func dateField(raw model.RawClaim, key string) *time.Time {
	s, ok := raw[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func stringsField(raw model.RawClaim, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
