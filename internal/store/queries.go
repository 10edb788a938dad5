package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Deal queries.
const (
	queryCreateDeal = `
		INSERT INTO deals (
			listing_id, buyer_id, status,
			stage_entered_at, reserved_until, reserved,
			created_at, updated_at
		) VALUES (
			@listing_id, @buyer_id, @status,
			@stage_entered_at, @reserved_until, @reserved,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetDeal = `
		SELECT id, listing_id, buyer_id, status,
			stage_entered_at, reserved_until, reserved,
			created_at, updated_at
		FROM deals
		WHERE id = $1`

	queryUpdateDealTimer = `
		UPDATE deals SET
			status             = $2,
			stage_entered_at   = $3,
			reserved_until     = $4,
			reserved           = $5,
			warned_running_low = false,
			updated_at         = now()
		WHERE id = $1`

	queryListExpiredDeals = `
		SELECT id, listing_id, buyer_id, status,
			stage_entered_at, reserved_until, reserved,
			created_at, updated_at
		FROM deals
		WHERE reserved = true
		  AND reserved_until IS NOT NULL
		  AND reserved_until < $1
		ORDER BY reserved_until ASC`

	queryListRunningLowDeals = `
		SELECT id, listing_id, buyer_id, status,
			stage_entered_at, reserved_until, reserved,
			created_at, updated_at
		FROM deals
		WHERE reserved = true
		  AND reserved_until IS NOT NULL
		  AND reserved_until >= $1
		  AND warned_running_low = false
		  AND ($1 - stage_entered_at) >= 0.8 * (reserved_until - stage_entered_at)
		ORDER BY reserved_until ASC`

	queryMarkDealRunningLowWarned = `
		UPDATE deals SET
			warned_running_low = true,
			updated_at         = now()
		WHERE id = $1`
)

// Buyer profile queries.
const (
	queryUpsertBuyerProfile = `
		INSERT INTO buyer_profiles (
			buyer_id,
			target_sectors, target_locations,
			target_revenue_min, target_revenue_max,
			target_employees_min, target_employees_max,
			target_transfer_types, target_customer_types,
			created_at, updated_at
		) VALUES (
			@buyer_id,
			@target_sectors, @target_locations,
			@target_revenue_min, @target_revenue_max,
			@target_employees_min, @target_employees_max,
			@target_transfer_types, @target_customer_types,
			now(), now()
		)
		ON CONFLICT (buyer_id) DO UPDATE SET
			target_sectors        = EXCLUDED.target_sectors,
			target_locations      = EXCLUDED.target_locations,
			target_revenue_min    = EXCLUDED.target_revenue_min,
			target_revenue_max    = EXCLUDED.target_revenue_max,
			target_employees_min  = EXCLUDED.target_employees_min,
			target_employees_max  = EXCLUDED.target_employees_max,
			target_transfer_types = EXCLUDED.target_transfer_types,
			target_customer_types = EXCLUDED.target_customer_types,
			updated_at            = now()
		RETURNING created_at, updated_at`

	queryGetBuyerProfile = `
		SELECT buyer_id,
			target_sectors, target_locations,
			target_revenue_min, target_revenue_max,
			target_employees_min, target_employees_max,
			target_transfer_types, target_customer_types,
			created_at, updated_at
		FROM buyer_profiles
		WHERE buyer_id = $1`

	queryListBuyerProfiles = `
		SELECT buyer_id,
			target_sectors, target_locations,
			target_revenue_min, target_revenue_max,
			target_employees_min, target_employees_max,
			target_transfer_types, target_customer_types,
			created_at, updated_at
		FROM buyer_profiles
		ORDER BY created_at ASC`
)

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			id, seller_id, title,
			industry_sector, location_department,
			annual_revenue, employee_count,
			transfer_type, customer_type, asking_price,
			status, created_at, updated_at
		) VALUES (
			@id, @seller_id, @title,
			@industry_sector, @location_department,
			@annual_revenue, @employee_count,
			@transfer_type, @customer_type, @asking_price,
			@status, now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			title               = EXCLUDED.title,
			industry_sector     = EXCLUDED.industry_sector,
			location_department = EXCLUDED.location_department,
			annual_revenue      = EXCLUDED.annual_revenue,
			employee_count      = EXCLUDED.employee_count,
			transfer_type       = EXCLUDED.transfer_type,
			customer_type       = EXCLUDED.customer_type,
			asking_price        = EXCLUDED.asking_price,
			status              = EXCLUDED.status,
			updated_at          = now()
		RETURNING created_at, updated_at`

	queryGetListing = `
		SELECT id, seller_id, title,
			COALESCE(industry_sector, ''), COALESCE(location_department, ''),
			annual_revenue, employee_count,
			COALESCE(transfer_type, ''), COALESCE(customer_type, ''), asking_price,
			status, created_at, updated_at
		FROM listings
		WHERE id = $1`

	querySetListingStatus = `
		UPDATE listings SET
			status     = $2,
			updated_at = now()
		WHERE id = $1`

	queryListCandidateListings = `
		SELECT l.id, l.seller_id, l.title,
			COALESCE(l.industry_sector, ''), COALESCE(l.location_department, ''),
			l.annual_revenue, l.employee_count,
			COALESCE(l.transfer_type, ''), COALESCE(l.customer_type, ''), l.asking_price,
			l.status, l.created_at, l.updated_at
		FROM listings l
		WHERE l.status = 'available'
		  AND NOT EXISTS (
			SELECT 1 FROM deals d
			WHERE d.listing_id = l.id AND d.buyer_id = $1
		  )
		ORDER BY l.created_at ASC`
)

// Match alert queries.
const (
	queryCreateMatchAlert = `
		INSERT INTO match_alerts (buyer_id, listing_id, score, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (buyer_id, listing_id) WHERE notified = false DO NOTHING
		RETURNING id, created_at`

	queryListPendingMatchAlerts = `
		SELECT id, buyer_id, listing_id, score, notified, notified_at, created_at
		FROM match_alerts
		WHERE notified = false
		ORDER BY created_at ASC`

	queryMarkMatchAlertsNotified = `
		UPDATE match_alerts SET
			notified = true,
			notified_at = now()
		WHERE id = ANY($1)`

	queryHasRecentMatchAlert = `
		SELECT EXISTS (
			SELECT 1 FROM match_alerts
			WHERE buyer_id = $1
			  AND listing_id = $2
			  AND notified = true
			  AND notified_at > $3
		)`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`
)

// Aggregate queries.
const (
	querySystemState = `
		SELECT
			(SELECT COUNT(*) FROM listings)                             AS listings_total,
			(SELECT COUNT(*) FROM listings WHERE status = 'available')  AS listings_available,
			(SELECT COUNT(*) FROM listings WHERE status = 'reserved')   AS listings_reserved,
			(SELECT COUNT(*) FROM deals)                                AS deals_total,
			(SELECT COUNT(*) FROM deals WHERE reserved = true)          AS deals_reserved,
			(SELECT COUNT(*) FROM deals
				WHERE reserved = true
				  AND reserved_until IS NOT NULL
				  AND reserved_until < now())                           AS deals_expired,
			(SELECT COUNT(*) FROM buyer_profiles)                       AS buyer_profiles,
			(SELECT COUNT(*) FROM match_alerts WHERE notified = false)  AS alerts_pending`
)
