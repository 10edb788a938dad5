package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// validDealOrderBy maps allowed OrderBy values to their SQL column expressions.
var validDealOrderBy = map[string]string{
	"created_at":       "created_at DESC",
	"stage_entered_at": "stage_entered_at DESC",
	"reserved_until":   "reserved_until ASC NULLS LAST",
}

const defaultDealOrderBy = "created_at DESC"

const baseDealsSelect = `SELECT id, listing_id, buyer_id, status,
	stage_entered_at, reserved_until, reserved,
	created_at, updated_at
FROM deals`

const countDealsSelect = "SELECT COUNT(*) FROM deals"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a deal query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *DealQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.BuyerID != nil {
		conditions = append(conditions, fmt.Sprintf("buyer_id = $%d", paramIdx))
		args = append(args, *q.BuyerID)
		paramIdx++
	}

	if q.ListingID != nil {
		conditions = append(conditions, fmt.Sprintf("listing_id = $%d", paramIdx))
		args = append(args, *q.ListingID)
		paramIdx++
	}

	if q.ReservedOnly {
		conditions = append(conditions, "reserved = true")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultDealOrderBy
	if q.OrderBy != "" {
		if col, ok := validDealOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit, offset := clampLimitOffset(q.Limit, q.Offset)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseDealsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countDealsSelect + whereClause

	return dataSQL, countSQL, args
}

// validListingOrderBy maps allowed OrderBy values to their SQL column expressions.
var validListingOrderBy = map[string]string{
	"created_at":     "created_at DESC",
	"annual_revenue": "annual_revenue DESC NULLS LAST",
	"employee_count": "employee_count DESC NULLS LAST",
}

const defaultListingOrderBy = "created_at DESC"

const baseListingsSelect = `SELECT id, seller_id, title,
	COALESCE(industry_sector, ''), COALESCE(location_department, ''),
	annual_revenue, employee_count,
	COALESCE(transfer_type, ''), COALESCE(customer_type, ''), asking_price,
	status, created_at, updated_at
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Sector != nil {
		conditions = append(conditions, fmt.Sprintf("industry_sector = $%d", paramIdx))
		args = append(args, *q.Sector)
		paramIdx++
	}

	if q.Department != nil {
		conditions = append(conditions, fmt.Sprintf("location_department = $%d", paramIdx))
		args = append(args, *q.Department)
		paramIdx++
	}

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultListingOrderBy
	if q.OrderBy != "" {
		if col, ok := validListingOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit, offset := clampLimitOffset(q.Limit, q.Offset)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

func clampLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}
