package model

import "time"

// StatusBucket is one of the four canonical claim outcomes after synonym
// normalization. Every screen and aggregate works in terms of these buckets
// so that the claims list, fraud view and reports can never drift apart.
type StatusBucket string

// Canonical status buckets.
const (
	StatusPending  StatusBucket = "Pending"
	StatusApproved StatusBucket = "Approved"
	StatusRejected StatusBucket = "Rejected"
	StatusOther    StatusBucket = "Other"
)

// AllStatusBuckets lists the buckets in display order.
var AllStatusBuckets = []StatusBucket{StatusPending, StatusApproved, StatusRejected, StatusOther}

// RawClaim is a single claim record exactly as the portal API delivered it.
// Field names and value types vary between portal versions (status may
// arrive as "status", "claimStatus", "state" or "verdict"; amounts may be
// numbers or strings), so the record stays untyped until normalization.
type RawClaim map[string]any

// NormalizedClaim is the canonical shape of a claim after normalization.
// Amount is always finite and non-negative; Date is nil when no date field
// parsed; Status is always one of the four buckets.
type NormalizedClaim struct {
	Date         *time.Time
	Title        string
	Remarks      string
	FraudReason  string
	Documents    []string
	ID           int64
	EmployeeID   int64
	AssignedHRID int64
	PolicyID     int64
	Amount       float64
	Status       StatusBucket
	FraudFlag    bool
}

// EnrichedClaim is a NormalizedClaim joined against the reference
// collections. The display fields are never empty: unresolvable ids get
// their documented fallback string instead.
type EnrichedClaim struct {
	NormalizedClaim
	EmployeeName      string
	EmployeeIDDisplay string
	AssignedHRName    string
	PolicyName        string
}
