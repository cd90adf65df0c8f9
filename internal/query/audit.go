package query

import (
	"strings"
	"time"

	"github.com/insurai/claimlens/internal/model"
)

// AuditFilter describes one filtered view of the audit log. Every field is
// optional; the zero value passes everything.
type AuditFilter struct {
	// Role keeps entries recorded for the named role, matched exactly.
	// Empty or "All" passes every role.
	Role string
	// Action is matched case-insensitively as a substring against the
	// action label.
	Action string
	// Days keeps entries from the last N days, measured back from now.
	// Zero applies no cutoff.
	Days int
}

// FilterAuditLogs keeps the audit entries matching every criterion. The
// predicates are ANDed; the input is never mutated.
func FilterAuditLogs(logs []model.AuditLog, f AuditFilter, now time.Time) []model.AuditLog {
	action := strings.ToLower(strings.TrimSpace(f.Action))
	var cutoff time.Time
	if f.Days > 0 {
		cutoff = now.AddDate(0, 0, -f.Days)
	}

	out := make([]model.AuditLog, 0, len(logs))
	for _, l := range logs {
		if f.Role != "" && f.Role != "All" && l.Role != f.Role {
			continue
		}
		if action != "" && !strings.Contains(strings.ToLower(l.Action), action) {
			continue
		}
		if f.Days > 0 && l.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, l)
	}
	return out
}
