package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendMatchAlert logs and discards a single match alert.
func (n *NoOpNotifier) SendMatchAlert(_ context.Context, alert *MatchAlertPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"buyer", alert.BuyerID,
		"listing", alert.ListingID,
		"score", alert.Score,
	)
	return nil
}

// SendBatchMatchAlert logs and discards a batch of match alerts.
func (n *NoOpNotifier) SendBatchMatchAlert(_ context.Context, alerts []MatchAlertPayload, buyerID string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"buyer", buyerID,
		"count", len(alerts),
	)
	return nil
}

// SendExpiryNotice logs and discards an expiry notice.
func (n *NoOpNotifier) SendExpiryNotice(_ context.Context, notice *ExpiryPayload) error {
	n.log.Debug("expiry notice discarded (no backend configured)",
		"deal", notice.DealID,
		"listing", notice.ListingID,
	)
	return nil
}

// SendRunningLowWarning logs and discards a running-low warning.
func (n *NoOpNotifier) SendRunningLowWarning(_ context.Context, warning *RunningLowPayload) error {
	n.log.Debug("running-low warning discarded (no backend configured)",
		"deal", warning.DealID,
		"listing", warning.ListingID,
	)
	return nil
}
