// Package store defines the datastore abstraction for dealflow.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"time"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// DealQuery defines optional filters for deal queries.
type DealQuery struct {
	Status       *string
	BuyerID      *string
	ListingID    *string
	ReservedOnly bool
	Limit        int // default 50
	Offset       int
	OrderBy      string // "created_at", "stage_entered_at", "reserved_until"
}

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Sector     *string
	Department *string
	Status     *string
	Limit      int // default 50
	Offset     int
	OrderBy    string // "created_at", "annual_revenue", "employee_count"
}

// Store defines all data access operations for dealflow.
type Store interface {
	// Deals
	CreateDeal(ctx context.Context, d *domain.Deal) error
	GetDeal(ctx context.Context, id string) (*domain.Deal, error)
	ListDeals(ctx context.Context, opts *DealQuery) ([]domain.Deal, int, error)
	// UpdateDealTimer persists a stage transition's timer fields as a single
	// row update. Concurrent transitions on the same deal must not interleave
	// partial writes; this is the only concurrency contract the engine
	// imposes on the store.
	UpdateDealTimer(
		ctx context.Context,
		id string,
		status domain.Stage,
		stageEnteredAt time.Time,
		reservedUntil *time.Time,
		reserved bool,
	) error
	ListExpiredDeals(ctx context.Context, now time.Time) ([]domain.Deal, error)
	// ListRunningLowDeals returns reserved deals that have consumed at least
	// 80% of their timer window, have not yet expired, and have not been
	// warned about it.
	ListRunningLowDeals(ctx context.Context, now time.Time) ([]domain.Deal, error)
	MarkDealRunningLowWarned(ctx context.Context, id string) error

	// Buyer profiles
	UpsertBuyerProfile(ctx context.Context, p *domain.BuyerProfile) error
	GetBuyerProfile(ctx context.Context, buyerID string) (*domain.BuyerProfile, error)
	ListBuyerProfiles(ctx context.Context) ([]domain.BuyerProfile, error)

	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)
	SetListingStatus(ctx context.Context, id string, status domain.ListingStatus) error
	// ListCandidateListings returns available listings the buyer has no deal
	// on yet, in creation order. This is the candidate set handed to the
	// matcher.
	ListCandidateListings(ctx context.Context, buyerID string) ([]domain.Listing, error)

	// Match alerts
	CreateMatchAlert(ctx context.Context, a *domain.MatchAlert) error
	ListPendingMatchAlerts(ctx context.Context) ([]domain.MatchAlert, error)
	MarkMatchAlertsNotified(ctx context.Context, ids []string) error
	// HasRecentMatchAlert reports whether a notified alert for the pair
	// exists after the given cutoff. The caller owns the clock.
	HasRecentMatchAlert(ctx context.Context, buyerID, listingID string, cutoff time.Time) (bool, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Aggregates
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
