package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mpoirier/dealflow/internal/metrics"
	"github.com/mpoirier/dealflow/internal/notify"
	"github.com/mpoirier/dealflow/pkg/stagetimer"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// RunExpirySweep releases every deal whose reservation deadline has passed:
// the deal moves to the released stage, the listing returns to the
// marketplace, and the buyer is notified. Returns the number of deals
// released.
func (eng *Engine) RunExpirySweep(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.ExpirySweepDuration.Observe(time.Since(start).Seconds())
	}()

	now := eng.nowFunc()

	expired, err := eng.store.ListExpiredDeals(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("listing expired deals: %w", err)
	}

	var released int
	for i := range expired {
		if ctx.Err() != nil {
			return released, ctx.Err()
		}

		d := &expired[i]
		if err := eng.releaseDeal(ctx, d, now); err != nil {
			eng.log.Error("releasing expired deal failed", "deal", d.ID, "error", err)
			continue
		}
		released++
	}

	if released > 0 {
		eng.log.Info("expiry sweep complete", "released", released, "candidates", len(expired))
	}

	eng.warnRunningLow(ctx, now)

	return released, nil
}

// warnRunningLow notifies buyers whose reservation has consumed most of its
// window but not yet expired. Each deal is warned at most once per timer
// window; a stage change resets the flag along with the deadline.
func (eng *Engine) warnRunningLow(ctx context.Context, now time.Time) {
	lowDeals, err := eng.store.ListRunningLowDeals(ctx, now)
	if err != nil {
		eng.log.Error("listing running-low deals failed", "error", err)
		return
	}

	for i := range lowDeals {
		if ctx.Err() != nil {
			return
		}

		d := &lowDeals[i]

		title := d.ListingID
		if listing, err := eng.store.GetListing(ctx, d.ListingID); err == nil {
			title = listing.Title
		}

		days, _ := stagetimer.DaysRemaining(d, now)
		payload := &notify.RunningLowPayload{
			DealID:        d.ID,
			BuyerID:       d.BuyerID,
			ListingID:     d.ListingID,
			ListingTitle:  title,
			Stage:         string(d.Status),
			DaysRemaining: days,
		}
		if d.ReservedUntil != nil {
			payload.ReservedUntil = d.ReservedUntil.Format(time.RFC3339)
		}

		if err := eng.notifier.SendRunningLowWarning(ctx, payload); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			eng.log.Error("running-low warning failed", "deal", d.ID, "error", err)
			continue
		}

		if err := eng.store.MarkDealRunningLowWarned(ctx, d.ID); err != nil {
			eng.log.Error("marking deal running-low warned failed", "deal", d.ID, "error", err)
			continue
		}

		metrics.RunningLowWarningsTotal.Inc()
		eng.log.Info("running-low warning sent", "deal", d.ID, "days_remaining", days)
	}
}

func (eng *Engine) releaseDeal(ctx context.Context, d *domain.Deal, now time.Time) error {
	expiredStage := d.Status
	expiredAt := d.ReservedUntil

	if err := eng.store.UpdateDealTimer(ctx,
		d.ID, domain.StageReleased, now, nil, false,
	); err != nil {
		return fmt.Errorf("updating deal timer: %w", err)
	}

	if err := eng.store.SetListingStatus(ctx, d.ListingID, domain.ListingAvailable); err != nil {
		return fmt.Errorf("releasing listing: %w", err)
	}

	metrics.DealsExpiredTotal.Inc()
	metrics.StageTransitionsTotal.WithLabelValues(string(domain.StageReleased)).Inc()

	eng.sendExpiryNotice(ctx, d, expiredStage, expiredAt)

	return nil
}

// sendExpiryNotice is best-effort: the release has already been persisted.
func (eng *Engine) sendExpiryNotice(
	ctx context.Context,
	d *domain.Deal,
	stage domain.Stage,
	expiredAt *time.Time,
) {
	title := d.ListingID
	if listing, err := eng.store.GetListing(ctx, d.ListingID); err == nil {
		title = listing.Title
	}

	payload := &notify.ExpiryPayload{
		DealID:       d.ID,
		BuyerID:      d.BuyerID,
		ListingID:    d.ListingID,
		ListingTitle: title,
		Stage:        string(stage),
	}
	if expiredAt != nil {
		payload.ExpiredAt = expiredAt.Format(time.RFC3339)
	}

	if err := eng.notifier.SendExpiryNotice(ctx, payload); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("expiry notice failed", "deal", d.ID, "error", err)
	}
}
