package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateDeal inserts a new deal with its initial timer state.
func (s *PostgresStore) CreateDeal(ctx context.Context, d *domain.Deal) error {
	args := pgx.NamedArgs{
		"listing_id":       d.ListingID,
		"buyer_id":         d.BuyerID,
		"status":           string(d.Status),
		"stage_entered_at": d.StageEnteredAt,
		"reserved_until":   d.ReservedUntil,
		"reserved":         d.Reserved,
	}

	return s.pool.QueryRow(ctx, queryCreateDeal, args).Scan(
		&d.ID, &d.CreatedAt, &d.UpdatedAt,
	)
}

// GetDeal retrieves a deal by its ID.
func (s *PostgresStore) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	d := &domain.Deal{}
	if err := scanDeal(s.pool.QueryRow(ctx, queryGetDeal, id), d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDeals queries deals with optional filters, returning results and total count.
func (s *PostgresStore) ListDeals(
	ctx context.Context,
	opts *DealQuery,
) ([]domain.Deal, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting deals: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying deals: %w", err)
	}
	defer rows.Close()

	deals, err := scanDeals(rows)
	if err != nil {
		return nil, 0, err
	}

	return deals, total, nil
}

// UpdateDealTimer persists the timer fields for a stage transition.
func (s *PostgresStore) UpdateDealTimer(
	ctx context.Context,
	id string,
	status domain.Stage,
	stageEnteredAt time.Time,
	reservedUntil *time.Time,
	reserved bool,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateDealTimer,
		id, string(status), stageEnteredAt, reservedUntil, reserved,
	)
	if err != nil {
		return fmt.Errorf("updating deal timer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListExpiredDeals returns deals whose reservation deadline has passed,
// oldest deadline first.
func (s *PostgresStore) ListExpiredDeals(
	ctx context.Context,
	now time.Time,
) ([]domain.Deal, error) {
	rows, err := s.pool.Query(ctx, queryListExpiredDeals, now)
	if err != nil {
		return nil, fmt.Errorf("querying expired deals: %w", err)
	}
	defer rows.Close()

	return scanDeals(rows)
}

// ListRunningLowDeals returns unwarned reserved deals at or past 80% of
// their timer window.
func (s *PostgresStore) ListRunningLowDeals(
	ctx context.Context,
	now time.Time,
) ([]domain.Deal, error) {
	rows, err := s.pool.Query(ctx, queryListRunningLowDeals, now)
	if err != nil {
		return nil, fmt.Errorf("querying running-low deals: %w", err)
	}
	defer rows.Close()

	return scanDeals(rows)
}

// MarkDealRunningLowWarned records that a running-low warning was sent for
// the deal's current timer window.
func (s *PostgresStore) MarkDealRunningLowWarned(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryMarkDealRunningLowWarned, id); err != nil {
		return fmt.Errorf("marking deal running-low warned: %w", err)
	}
	return nil
}

// UpsertBuyerProfile inserts or replaces a buyer's matching criteria.
func (s *PostgresStore) UpsertBuyerProfile(ctx context.Context, p *domain.BuyerProfile) error {
	args := pgx.NamedArgs{
		"buyer_id":              p.BuyerID,
		"target_sectors":        p.TargetSectors,
		"target_locations":      p.TargetLocations,
		"target_revenue_min":    p.TargetRevenueMin,
		"target_revenue_max":    p.TargetRevenueMax,
		"target_employees_min":  p.TargetEmployeesMin,
		"target_employees_max":  p.TargetEmployeesMax,
		"target_transfer_types": p.TargetTransferTypes,
		"target_customer_types": p.TargetCustomerTypes,
	}

	return s.pool.QueryRow(ctx, queryUpsertBuyerProfile, args).Scan(
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// GetBuyerProfile retrieves a buyer's profile by buyer ID.
func (s *PostgresStore) GetBuyerProfile(
	ctx context.Context,
	buyerID string,
) (*domain.BuyerProfile, error) {
	p := &domain.BuyerProfile{}
	if err := scanBuyerProfile(s.pool.QueryRow(ctx, queryGetBuyerProfile, buyerID), p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListBuyerProfiles returns all buyer profiles, oldest first.
func (s *PostgresStore) ListBuyerProfiles(ctx context.Context) ([]domain.BuyerProfile, error) {
	rows, err := s.pool.Query(ctx, queryListBuyerProfiles)
	if err != nil {
		return nil, fmt.Errorf("querying buyer profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.BuyerProfile
	for rows.Next() {
		var p domain.BuyerProfile
		if err := scanBuyerProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning buyer profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// UpsertListing inserts or updates a listing by ID.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"id":                  l.ID,
		"seller_id":           l.SellerID,
		"title":               l.Title,
		"industry_sector":     nullIfEmpty(l.IndustrySector),
		"location_department": nullIfEmpty(l.LocationDepartment),
		"annual_revenue":      l.AnnualRevenue,
		"employee_count":      l.EmployeeCount,
		"transfer_type":       nullIfEmpty(l.TransferType),
		"customer_type":       nullIfEmpty(l.CustomerType),
		"asking_price":        l.AskingPrice,
		"status":              string(l.Status),
	}

	return s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.CreatedAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by its ID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// SetListingStatus updates a listing's availability status.
func (s *PostgresStore) SetListingStatus(
	ctx context.Context,
	id string,
	status domain.ListingStatus,
) error {
	_, err := s.pool.Exec(ctx, querySetListingStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("setting listing status: %w", err)
	}
	return nil
}

// ListCandidateListings returns available listings the buyer has no existing
// deal on, in creation order.
func (s *PostgresStore) ListCandidateListings(
	ctx context.Context,
	buyerID string,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, queryListCandidateListings, buyerID)
	if err != nil {
		return nil, fmt.Errorf("querying candidate listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

// CreateMatchAlert inserts a new match alert, silently ignoring duplicates.
func (s *PostgresStore) CreateMatchAlert(ctx context.Context, a *domain.MatchAlert) error {
	err := s.pool.QueryRow(ctx, queryCreateMatchAlert,
		a.BuyerID, a.ListingID, a.Score,
	).Scan(&a.ID, &a.CreatedAt)

	// ON CONFLICT DO NOTHING returns no rows — treat as success.
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

// ListPendingMatchAlerts returns all un-notified match alerts, oldest first.
func (s *PostgresStore) ListPendingMatchAlerts(ctx context.Context) ([]domain.MatchAlert, error) {
	rows, err := s.pool.Query(ctx, queryListPendingMatchAlerts)
	if err != nil {
		return nil, fmt.Errorf("querying pending match alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.MatchAlert
	for rows.Next() {
		var a domain.MatchAlert
		if err := rows.Scan(
			&a.ID, &a.BuyerID, &a.ListingID, &a.Score,
			&a.Notified, &a.NotifiedAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning match alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// MarkMatchAlertsNotified marks multiple match alerts as notified.
func (s *PostgresStore) MarkMatchAlertsNotified(ctx context.Context, ids []string) error {
	_, err := s.pool.Exec(ctx, queryMarkMatchAlertsNotified, ids)
	if err != nil {
		return fmt.Errorf("marking match alerts notified: %w", err)
	}
	return nil
}

// HasRecentMatchAlert returns true if a notified alert for the same
// (buyer, listing) pair exists after the cutoff.
func (s *PostgresStore) HasRecentMatchAlert(
	ctx context.Context,
	buyerID, listingID string,
	cutoff time.Time,
) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasRecentMatchAlert, buyerID, listingID, cutoff).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking recent match alert: %w", err)
	}
	return exists, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// ListJobRuns returns the run history for one job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetSystemState returns a snapshot of aggregate pipeline counts.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	if err := s.pool.QueryRow(ctx, querySystemState).Scan(
		&st.ListingsTotal, &st.ListingsAvailable, &st.ListingsReserved,
		&st.DealsTotal, &st.DealsReserved, &st.DealsExpired,
		&st.BuyerProfiles, &st.AlertsPending,
	); err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanDeal(row scannable, d *domain.Deal) error {
	return row.Scan(
		&d.ID, &d.ListingID, &d.BuyerID, &d.Status,
		&d.StageEnteredAt, &d.ReservedUntil, &d.Reserved,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

func scanDeals(rows pgx.Rows) ([]domain.Deal, error) {
	var deals []domain.Deal
	for rows.Next() {
		var d domain.Deal
		if err := scanDeal(rows, &d); err != nil {
			return nil, fmt.Errorf("scanning deal: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

func scanBuyerProfile(row scannable, p *domain.BuyerProfile) error {
	return row.Scan(
		&p.BuyerID,
		&p.TargetSectors, &p.TargetLocations,
		&p.TargetRevenueMin, &p.TargetRevenueMax,
		&p.TargetEmployeesMin, &p.TargetEmployeesMax,
		&p.TargetTransferTypes, &p.TargetCustomerTypes,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.SellerID, &l.Title,
		&l.IndustrySector, &l.LocationDepartment,
		&l.AnnualRevenue, &l.EmployeeCount,
		&l.TransferType, &l.CustomerType, &l.AskingPrice,
		&l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
}

func scanListings(rows pgx.Rows) ([]domain.Listing, error) {
	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
