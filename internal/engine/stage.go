package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mpoirier/dealflow/internal/metrics"
	"github.com/mpoirier/dealflow/pkg/stagetimer"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// ErrUnknownStage is returned when a stage transition names a stage outside
// the pipeline.
type ErrUnknownStage struct {
	Stage domain.Stage
}

func (e *ErrUnknownStage) Error() string {
	return fmt.Sprintf("unknown pipeline stage %q", e.Stage)
}

// CreateDeal creates a deal in the given initial stage, arming its timer
// and reserving the listing when the stage calls for it.
func (eng *Engine) CreateDeal(
	ctx context.Context,
	listingID, buyerID string,
	stage domain.Stage,
) (*domain.Deal, error) {
	if !stage.Valid() {
		return nil, &ErrUnknownStage{Stage: stage}
	}

	now := eng.nowFunc()
	d := domain.Deal{
		ListingID: listingID,
		BuyerID:   buyerID,
	}
	d = stagetimer.Apply(d, stage, now, eng.timers)

	if err := eng.store.CreateDeal(ctx, &d); err != nil {
		return nil, fmt.Errorf("creating deal: %w", err)
	}

	if err := eng.syncListingStatus(ctx, d.ListingID, stage); err != nil {
		eng.log.Error("listing status sync failed",
			"deal", d.ID, "listing", d.ListingID, "error", err)
	}

	metrics.StageTransitionsTotal.WithLabelValues(string(stage)).Inc()

	eng.log.Info("deal created",
		"deal", d.ID,
		"listing", d.ListingID,
		"buyer", d.BuyerID,
		"stage", d.Status,
		"reserved_until", d.ReservedUntil,
	)

	return &d, nil
}

// ChangeStage moves a deal to a new pipeline stage. The stage timer is
// recomputed on every change of stage, including moves between stages that
// share a timer duration. Moving a deal to the stage it is already in is a
// no-op and leaves the running timer untouched.
func (eng *Engine) ChangeStage(
	ctx context.Context,
	dealID string,
	newStage domain.Stage,
) (*domain.Deal, error) {
	if !newStage.Valid() {
		return nil, &ErrUnknownStage{Stage: newStage}
	}

	d, err := eng.store.GetDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("getting deal %s: %w", dealID, err)
	}

	if d.Status == newStage {
		return d, nil
	}

	updated := stagetimer.Apply(*d, newStage, eng.nowFunc(), eng.timers)

	if err := eng.store.UpdateDealTimer(ctx,
		updated.ID, updated.Status, updated.StageEnteredAt,
		updated.ReservedUntil, updated.Reserved,
	); err != nil {
		return nil, fmt.Errorf("updating deal timer: %w", err)
	}

	if err := eng.syncListingStatus(ctx, updated.ListingID, newStage); err != nil {
		eng.log.Error("listing status sync failed",
			"deal", updated.ID, "listing", updated.ListingID, "error", err)
	}

	metrics.StageTransitionsTotal.WithLabelValues(string(newStage)).Inc()

	eng.log.Info("stage changed",
		"deal", updated.ID,
		"from", d.Status,
		"to", newStage,
		"reserved_until", updated.ReservedUntil,
	)

	return &updated, nil
}

// syncListingStatus keeps the listing's marketplace status consistent with
// the deal's pipeline position. Favorited, audits, and financing leave the
// listing as-is.
func (eng *Engine) syncListingStatus(
	ctx context.Context,
	listingID string,
	stage domain.Stage,
) error {
	var status domain.ListingStatus

	switch stage {
	case domain.StageToContact, domain.StageInfoExchange, domain.StageAnalysis,
		domain.StageProjectAlignment, domain.StageNegotiation, domain.StageLOI:
		status = domain.ListingReserved
	case domain.StageDealSigned:
		status = domain.ListingSold
	case domain.StageReleased, domain.StageAbandoned:
		status = domain.ListingAvailable
	default:
		return nil
	}

	return eng.store.SetListingStatus(ctx, listingID, status)
}

// TimerStatus summarizes a deal's timer state at a point in time.
type TimerStatus struct {
	DealID          string
	Stage           domain.Stage
	Reserved        bool
	StageEnteredAt  time.Time
	ReservedUntil   *time.Time
	DaysRemaining   *int
	ProgressPercent *int
	Expired         bool
	RunningLow      bool
}

// TimerStatus computes the timer snapshot for a deal.
func (eng *Engine) TimerStatus(ctx context.Context, dealID string) (*TimerStatus, error) {
	d, err := eng.store.GetDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("getting deal %s: %w", dealID, err)
	}

	now := eng.nowFunc()
	ts := &TimerStatus{
		DealID:         d.ID,
		Stage:          d.Status,
		Reserved:       d.Reserved,
		StageEnteredAt: d.StageEnteredAt,
		ReservedUntil:  d.ReservedUntil,
		Expired:        stagetimer.IsExpired(d, now),
		RunningLow:     stagetimer.IsRunningLow(d, now),
	}

	if days, ok := stagetimer.DaysRemaining(d, now); ok {
		ts.DaysRemaining = &days
	}
	if pct, ok := stagetimer.ProgressPercent(d, now); ok {
		ts.ProgressPercent = &pct
	}

	return ts, nil
}
