// Package notify defines the notification interface and implementations
// for match alert and timer expiry delivery.
package notify

import (
	"context"
)

// MatchAlertPayload contains the data needed to send a match alert notification.
type MatchAlertPayload struct {
	BuyerID      string
	ListingID    string
	ListingTitle string
	Sector       string
	Department   string
	Revenue      string
	Employees    string
	AskingPrice  string
	Score        int
}

// ExpiryPayload contains the data needed to notify about an expired deal timer.
type ExpiryPayload struct {
	DealID       string
	BuyerID      string
	ListingID    string
	ListingTitle string
	Stage        string
	ExpiredAt    string
}

// RunningLowPayload contains the data needed to warn that a deal timer is
// almost consumed.
type RunningLowPayload struct {
	DealID        string
	BuyerID       string
	ListingID     string
	ListingTitle  string
	Stage         string
	ReservedUntil string
	DaysRemaining int
}

// Notifier defines the interface for sending deal notifications.
type Notifier interface {
	SendMatchAlert(ctx context.Context, alert *MatchAlertPayload) error
	SendBatchMatchAlert(ctx context.Context, alerts []MatchAlertPayload, buyerID string) error
	SendExpiryNotice(ctx context.Context, notice *ExpiryPayload) error
	SendRunningLowWarning(ctx context.Context, warning *RunningLowPayload) error
}
