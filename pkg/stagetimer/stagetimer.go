// Package stagetimer computes deal reservation deadlines across pipeline
// stage transitions.
//
// Three timer classes exist: to_contact and negotiation each run their own
// countdown, while info_exchange, analysis, and project_alignment share a
// single day budget. Note that Apply resets the clock on every stage change,
// including moves between the three shared-budget stages; this matches the
// production behavior the marketplace has always had, so each substage
// advance re-extends the shared deadline.
package stagetimer

import (
	"math"
	"time"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// Default timer day counts, used when configuration does not override them.
const (
	DefaultToContactDays    = 7
	DefaultInfoAnalysisDays = 33
	DefaultNegotiationDays  = 20
)

// RunningLowThreshold is the progress percentage at or above which a deal
// timer is considered to be running low.
const RunningLowThreshold = 80

// Timers holds the configured day counts for each timer class.
type Timers struct {
	// ToContactDays is the countdown for the to_contact stage.
	ToContactDays int
	// InfoAnalysisDays is the single budget shared by info_exchange,
	// analysis, and project_alignment.
	InfoAnalysisDays int
	// NegotiationDays is the countdown for the negotiation stage.
	NegotiationDays int
}

// DefaultTimers returns the hard-coded fallback day counts.
func DefaultTimers() Timers {
	return Timers{
		ToContactDays:    DefaultToContactDays,
		InfoAnalysisDays: DefaultInfoAnalysisDays,
		NegotiationDays:  DefaultNegotiationDays,
	}
}

// StageDays returns the countdown length in days for a stage, and whether
// the stage carries a timer at all. Unrecognized stages fail closed and
// report no timer.
func StageDays(stage domain.Stage, t Timers) (int, bool) {
	switch stage {
	case domain.StageToContact:
		return t.ToContactDays, true
	case domain.StageInfoExchange, domain.StageAnalysis, domain.StageProjectAlignment:
		return t.InfoAnalysisDays, true
	case domain.StageNegotiation:
		return t.NegotiationDays, true
	default:
		return 0, false
	}
}

// Apply returns the deal as it stands after transitioning to newStage at
// the given time. Re-entering the current stage is a no-op and never resets
// the clock. Apply is pure; the caller owns persistence.
func Apply(deal domain.Deal, newStage domain.Stage, now time.Time, t Timers) domain.Deal {
	if newStage == deal.Status {
		return deal
	}

	deal.Status = newStage
	deal.StageEnteredAt = now

	if days, ok := StageDays(newStage, t); ok {
		until := now.AddDate(0, 0, days)
		deal.ReservedUntil = &until
		deal.Reserved = true
		return deal
	}

	deal.ReservedUntil = nil
	// loi holds the listing without a deadline while awaiting manual
	// validation; every other untimed stage drops the reservation.
	deal.Reserved = newStage == domain.StageLOI
	return deal
}

// IsExpired reports whether the deal's reservation deadline has passed.
// Deals without a deadline never expire.
func IsExpired(deal *domain.Deal, now time.Time) bool {
	return deal.ReservedUntil != nil && now.After(*deal.ReservedUntil)
}

// DaysRemaining returns the whole days left before the deadline, rounded
// up, and whether the deal has a deadline at all. The count goes negative
// once the deadline has passed.
func DaysRemaining(deal *domain.Deal, now time.Time) (int, bool) {
	if deal.ReservedUntil == nil {
		return 0, false
	}
	hours := deal.ReservedUntil.Sub(now).Hours()
	return int(math.Ceil(hours / 24)), true
}

// ProgressPercent returns how far through its countdown the deal is, as a
// whole percentage. The value is capped at 100 but deliberately not floored
// at 0: a stage-entry timestamp in the future yields a negative reading.
// Returns false when the deal has no deadline or no stage-entry timestamp.
func ProgressPercent(deal *domain.Deal, now time.Time) (int, bool) {
	if deal.ReservedUntil == nil || deal.StageEnteredAt.IsZero() {
		return 0, false
	}

	total := deal.ReservedUntil.Sub(deal.StageEnteredAt)
	if total <= 0 {
		return 100, true
	}

	elapsed := now.Sub(deal.StageEnteredAt)
	pct := int(math.Floor(100 * float64(elapsed) / float64(total)))
	if pct > 100 {
		pct = 100
	}
	return pct, true
}

// IsRunningLow reports whether the deal has used at least 80% of its
// countdown.
func IsRunningLow(deal *domain.Deal, now time.Time) bool {
	pct, ok := ProgressPercent(deal, now)
	return ok && pct >= RunningLowThreshold
}
