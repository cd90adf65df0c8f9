// Package stats computes the statistical rollups behind the dashboard,
// fraud and reports screens. Every computation here runs over claims whose
// amounts and statuses were already canonicalized; nothing re-parses raw
// fields.
package stats

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/insurai/claimlens/internal/model"
)

// StatusCount is one slice of the status distribution.
type StatusCount struct {
	Bucket     model.StatusBucket
	Count      int
	Percentage float64
}

// MonthPoint is one month of the trend series.
type MonthPoint struct {
	Month         string
	TotalCount    int
	ApprovedCount int
	PendingCount  int
}

// Workload is the per-assignee rollup of claim outcomes.
type Workload struct {
	AssigneeID   int64
	Approved     int
	Rejected     int
	Pending      int
	Total        int
	ApprovalRate float64
}

// PolicyUsage is the per-policy rollup of claim volume and spend.
type PolicyUsage struct {
	PolicyID    int64
	PolicyName  string
	ClaimCount  int
	TotalAmount float64
	AvgPerClaim float64
}

// FraudSummary covers the fraud-flagged subset. Resolved means any
// non-pending bucket.
type FraudSummary struct {
	TotalCount     int
	PendingCount   int
	ResolvedCount  int
	TotalAmount    float64
	PendingAmount  float64
	ResolvedAmount float64
}

// trendMonths is the fixed width of the monthly trend series.
const trendMonths = 6

// Snapshot is the immutable result of one aggregation run. A fresh
// snapshot replaces the old one whenever the input collection changes;
// nothing mutates a snapshot after Aggregate returns.
type Snapshot struct {
	RunID            string
	GeneratedAt      time.Time
	TotalClaims      int
	TotalAmount      float64
	ApprovedAmount   float64
	AverageAmount    float64
	StatusBreakdown  []StatusCount
	MonthlyTrend     []MonthPoint
	AssigneeWorkload map[int64]Workload
	PolicyUsage      map[int64]PolicyUsage
	Fraud            FraudSummary
}

// Aggregate computes a snapshot over any claim collection, typically the
// filtered-but-unpaginated view or the full set. now anchors the monthly
// trend. An empty input yields an all-zero snapshot, never an error.
func Aggregate(claims []model.EnrichedClaim, now time.Time) *Snapshot {
	snap := &Snapshot{
		RunID:            uuid.NewString(),
		GeneratedAt:      now,
		TotalClaims:      len(claims),
		StatusBreakdown:  statusBreakdown(claims),
		MonthlyTrend:     monthlyTrend(claims, now),
		AssigneeWorkload: assigneeWorkload(claims),
		PolicyUsage:      policyUsage(claims),
		Fraud:            fraudSummary(claims),
	}

	for _, c := range claims {
		snap.TotalAmount += c.Amount
		if c.Status == model.StatusApproved {
			snap.ApprovedAmount += c.Amount
		}
	}
	if len(claims) > 0 {
		snap.AverageAmount = snap.TotalAmount / float64(len(claims))
	}
	return snap
}

// Count returns the count for one bucket out of the breakdown.
func (s *Snapshot) Count(bucket model.StatusBucket) int {
	for _, sc := range s.StatusBreakdown {
		if sc.Bucket == bucket {
			return sc.Count
		}
	}
	return 0
}

func statusBreakdown(claims []model.EnrichedClaim) []StatusCount {
	counts := make(map[model.StatusBucket]int, len(model.AllStatusBuckets))
	for _, c := range claims {
		counts[c.Status]++
	}

	out := make([]StatusCount, 0, len(model.AllStatusBuckets))
	total := len(claims)
	for _, bucket := range model.AllStatusBuckets {
		sc := StatusCount{Bucket: bucket, Count: counts[bucket]}
		if total > 0 {
			sc.Percentage = float64(sc.Count) / float64(total) * 100
		}
		out = append(out, sc)
	}
	return out
}

// monthlyTrend builds a fixed-width series of the trailing six months,
// oldest first and the current month last. Months without claims appear
// with zero counts; undated claims are excluded here but still counted in
// the status and total aggregates.
func monthlyTrend(claims []model.EnrichedClaim, now time.Time) []MonthPoint {
	type ym struct {
		year  int
		month time.Month
	}

	points := make([]MonthPoint, trendMonths)
	index := make(map[ym]int, trendMonths)
	for i := 0; i < trendMonths; i++ {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, i-(trendMonths-1), 0)
		points[i] = MonthPoint{Month: m.Format("Jan 2006")}
		index[ym{m.Year(), m.Month()}] = i
	}

	for _, c := range claims {
		if c.Date == nil {
			continue
		}
		i, ok := index[ym{c.Date.Year(), c.Date.Month()}]
		if !ok {
			continue
		}
		points[i].TotalCount++
		switch c.Status {
		case model.StatusApproved:
			points[i].ApprovedCount++
		case model.StatusPending:
			points[i].PendingCount++
		}
	}
	return points
}

func assigneeWorkload(claims []model.EnrichedClaim) map[int64]Workload {
	out := make(map[int64]Workload)
	for _, c := range claims {
		if c.AssignedHRID == 0 {
			continue
		}
		w := out[c.AssignedHRID]
		w.AssigneeID = c.AssignedHRID
		w.Total++
		switch c.Status {
		case model.StatusApproved:
			w.Approved++
		case model.StatusRejected:
			w.Rejected++
		case model.StatusPending:
			w.Pending++
		}
		out[c.AssignedHRID] = w
	}

	for id, w := range out {
		if w.Total > 0 {
			w.ApprovalRate = round1(float64(w.Approved) / float64(w.Total) * 100)
		}
		out[id] = w
	}
	return out
}

func policyUsage(claims []model.EnrichedClaim) map[int64]PolicyUsage {
	out := make(map[int64]PolicyUsage)
	for _, c := range claims {
		if c.PolicyID == 0 {
			continue
		}
		u := out[c.PolicyID]
		u.PolicyID = c.PolicyID
		u.PolicyName = c.PolicyName
		u.ClaimCount++
		u.TotalAmount += c.Amount
		out[c.PolicyID] = u
	}

	for id, u := range out {
		if u.ClaimCount > 0 {
			u.AvgPerClaim = u.TotalAmount / float64(u.ClaimCount)
		}
		out[id] = u
	}
	return out
}

func fraudSummary(claims []model.EnrichedClaim) FraudSummary {
	var f FraudSummary
	for _, c := range claims {
		if !c.FraudFlag {
			continue
		}
		f.TotalCount++
		f.TotalAmount += c.Amount
		if c.Status == model.StatusPending {
			f.PendingCount++
			f.PendingAmount += c.Amount
		}
	}
	f.ResolvedCount = f.TotalCount - f.PendingCount
	f.ResolvedAmount = f.TotalAmount - f.PendingAmount
	return f
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
