package model

import (
	"time"

	json "github.com/goccy/go-json"
)

// Employee is a portal user record. The same endpoint backs both claim
// enrichment and the user-management export, so the record carries account
// fields as well as display fields. Password is decoded so the shape
// round-trips, but exporters must never emit it.
type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	Password   string `json:"password,omitempty"`
}

// HRStaff is an HR user that claims get assigned to.
type HRStaff struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Agent is an insurance agent reference record.
type Agent struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Policy is an insurance policy reference record.
type Policy struct {
	ID             int64
	PolicyName     string
	ProviderName   string
	PolicyType     string
	Status         string
	CoverageAmount float64
}

// policyJSON mirrors the wire shape of a policy, including the legacy
// field names some portal versions still emit.
type policyJSON struct {
	ID             int64   `json:"id"`
	PolicyID       int64   `json:"policyId"`
	PolicyName     string  `json:"policyName"`
	Name           string  `json:"name"`
	ProviderName   string  `json:"providerName"`
	Provider       string  `json:"provider"`
	PolicyType     string  `json:"policyType"`
	PolicyStatus   string  `json:"policyStatus"`
	Status         string  `json:"status"`
	CoverageAmount float64 `json:"coverageAmount"`
}

// UnmarshalJSON coalesces the aliased policy fields. Priority order follows
// the newer field name first, matching the portal's own rendering.
func (p *Policy) UnmarshalJSON(data []byte) error {
	var raw policyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	if p.ID == 0 {
		p.ID = raw.PolicyID
	}
	p.PolicyName = firstNonEmpty(raw.PolicyName, raw.Name)
	p.ProviderName = firstNonEmpty(raw.ProviderName, raw.Provider)
	p.PolicyType = raw.PolicyType
	p.Status = firstNonEmpty(raw.PolicyStatus, raw.Status)
	p.CoverageAmount = raw.CoverageAmount

	return nil
}

// MarshalJSON writes the canonical field names only.
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(policyJSON{
		ID:             p.ID,
		PolicyName:     p.PolicyName,
		ProviderName:   p.ProviderName,
		PolicyType:     p.PolicyType,
		Status:         p.Status,
		CoverageAmount: p.CoverageAmount,
	})
}

// AuditLog is one system-activity record.
type AuditLog struct {
	Timestamp time.Time `json:"timestamp"`
	UserName  string    `json:"userName"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
