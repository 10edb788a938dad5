package engine

import (
	"context"
	"fmt"

	"github.com/mpoirier/dealflow/internal/metrics"
	"github.com/mpoirier/dealflow/pkg/matcher"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// Matches computes the current matches for one buyer on demand. Nothing is
// persisted; the candidate set excludes listings the buyer already has a
// deal on.
func (eng *Engine) Matches(
	ctx context.Context,
	buyerID string,
	limit int,
) ([]domain.Match, error) {
	profile, err := eng.store.GetBuyerProfile(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("getting buyer profile %s: %w", buyerID, err)
	}

	candidates, err := eng.store.ListCandidateListings(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("listing candidates for %s: %w", buyerID, err)
	}

	return matcher.FindMatches(profile, candidates, limit), nil
}

// RunMatchRefresh recomputes matches for every buyer with stated criteria
// and records an alert for each match at or above the alert threshold,
// unless the same (buyer, listing) pair was already notified within the
// cooldown window. Pending alerts are then delivered. Returns the number of
// alerts recorded.
func (eng *Engine) RunMatchRefresh(ctx context.Context) (int, error) {
	profiles, err := eng.store.ListBuyerProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing buyer profiles: %w", err)
	}

	var recorded int

	for i := range profiles {
		if ctx.Err() != nil {
			return recorded, ctx.Err()
		}

		p := &profiles[i]
		if !p.HasCriteria() {
			continue
		}

		n, err := eng.refreshBuyer(ctx, p)
		if err != nil {
			eng.log.Error("match refresh failed", "buyer", p.BuyerID, "error", err)
			metrics.MatchRefreshErrorsTotal.Inc()
			continue
		}
		recorded += n
	}

	// Always deliver pending alerts, even when some buyers failed.
	if err := ProcessAlerts(ctx, eng.store, eng.notifier); err != nil {
		eng.log.Error("alert processing failed", "error", err)
	}

	return recorded, nil
}

func (eng *Engine) refreshBuyer(ctx context.Context, p *domain.BuyerProfile) (int, error) {
	candidates, err := eng.store.ListCandidateListings(ctx, p.BuyerID)
	if err != nil {
		return 0, fmt.Errorf("listing candidates: %w", err)
	}

	matches := matcher.FindMatches(p, candidates, eng.matchLimit)
	metrics.MatchesComputedTotal.Add(float64(len(matches)))

	var recorded int
	for i := range matches {
		m := &matches[i]
		metrics.MatchScoreDistribution.Observe(float64(m.Score))

		if m.Score < eng.alertThreshold {
			continue
		}

		cutoff := eng.nowFunc().Add(-eng.alertCooldown)
		recent, err := eng.store.HasRecentMatchAlert(ctx, p.BuyerID, m.Listing.ID, cutoff)
		if err != nil {
			return recorded, fmt.Errorf("checking alert cooldown: %w", err)
		}
		if recent {
			continue
		}

		alert := &domain.MatchAlert{
			BuyerID:   p.BuyerID,
			ListingID: m.Listing.ID,
			Score:     m.Score,
		}
		if err := eng.store.CreateMatchAlert(ctx, alert); err != nil {
			return recorded, fmt.Errorf("creating match alert: %w", err)
		}
		recorded++
	}

	return recorded, nil
}
