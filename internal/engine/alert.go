package engine

import (
	"context"
	"fmt"

	"github.com/mpoirier/dealflow/internal/metrics"
	"github.com/mpoirier/dealflow/internal/notify"
	"github.com/mpoirier/dealflow/internal/store"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

const batchThreshold = 5

// ProcessAlerts sends notifications for pending match alerts, then marks them
// as notified. Alerts are grouped by buyer — if a buyer has 5+ pending alerts,
// they are sent as a batch. Failed notifications are not marked as notified.
func ProcessAlerts(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
) error {
	pending, err := s.ListPendingMatchAlerts(ctx)
	if err != nil {
		return fmt.Errorf("listing pending alerts: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	grouped := groupByBuyer(pending)

	for buyerID, alerts := range grouped {
		if err := sendAlerts(ctx, s, n, buyerID, alerts); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			continue
		}
	}

	return nil
}

func groupByBuyer(alerts []domain.MatchAlert) map[string][]domain.MatchAlert {
	grouped := make(map[string][]domain.MatchAlert)
	for _, a := range alerts {
		grouped[a.BuyerID] = append(grouped[a.BuyerID], a)
	}
	return grouped
}

func sendAlerts(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	buyerID string,
	alerts []domain.MatchAlert,
) error {
	if len(alerts) >= batchThreshold {
		return sendBatch(ctx, s, n, buyerID, alerts)
	}

	for i := range alerts {
		if err := sendSingle(ctx, s, n, &alerts[i]); err != nil {
			return err
		}
	}

	return nil
}

func sendSingle(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	alert *domain.MatchAlert,
) error {
	listing, err := s.GetListing(ctx, alert.ListingID)
	if err != nil {
		return fmt.Errorf("getting listing %s: %w", alert.ListingID, err)
	}

	payload := buildMatchAlertPayload(alert, listing)

	if err := n.SendMatchAlert(ctx, payload); err != nil {
		return fmt.Errorf("sending alert: %w", err)
	}

	metrics.AlertsFiredTotal.Inc()

	return s.MarkMatchAlertsNotified(ctx, []string{alert.ID})
}

func sendBatch(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	buyerID string,
	alerts []domain.MatchAlert,
) error {
	payloads := make([]notify.MatchAlertPayload, 0, len(alerts))
	alertIDs := make([]string, 0, len(alerts))

	for i := range alerts {
		listing, err := s.GetListing(ctx, alerts[i].ListingID)
		if err != nil {
			continue // listing may have been withdrawn
		}
		payloads = append(payloads, *buildMatchAlertPayload(&alerts[i], listing))
		alertIDs = append(alertIDs, alerts[i].ID)
	}

	if len(payloads) == 0 {
		return nil
	}

	if err := n.SendBatchMatchAlert(ctx, payloads, buyerID); err != nil {
		return fmt.Errorf("sending batch alert: %w", err)
	}

	metrics.AlertsFiredTotal.Add(float64(len(alertIDs)))

	return s.MarkMatchAlertsNotified(ctx, alertIDs)
}

func buildMatchAlertPayload(
	alert *domain.MatchAlert,
	listing *domain.Listing,
) *notify.MatchAlertPayload {
	p := &notify.MatchAlertPayload{
		BuyerID:      alert.BuyerID,
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		Sector:       listing.IndustrySector,
		Department:   listing.LocationDepartment,
		Score:        alert.Score,
		Revenue:      "n/a",
		Employees:    "n/a",
		AskingPrice:  "n/a",
	}

	if listing.AnnualRevenue != nil {
		p.Revenue = fmt.Sprintf("€%.0f", *listing.AnnualRevenue)
	}
	if listing.EmployeeCount != nil {
		p.Employees = fmt.Sprintf("%d", *listing.EmployeeCount)
	}
	if listing.AskingPrice != nil {
		p.AskingPrice = fmt.Sprintf("€%.0f", *listing.AskingPrice)
	}

	return p
}
