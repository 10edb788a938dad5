package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDealQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         DealQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: DealQuery{},
			wantDataHas: []string{
				"FROM deals",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM deals",
			wantArgs:      nil,
		},
		{
			name: "status filter",
			query: DealQuery{
				Status: ptr("negotiation"),
			},
			wantDataHas:  []string{"WHERE status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE status = $1",
			wantArgs:     []any{"negotiation"},
		},
		{
			name: "buyer filter",
			query: DealQuery{
				BuyerID: ptr("buyer-42"),
			},
			wantDataHas:  []string{"WHERE buyer_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE buyer_id = $1",
			wantArgs:     []any{"buyer-42"},
		},
		{
			name: "listing filter",
			query: DealQuery{
				ListingID: ptr("lst-7"),
			},
			wantDataHas:  []string{"WHERE listing_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE listing_id = $1",
			wantArgs:     []any{"lst-7"},
		},
		{
			name: "reserved only adds no parameter",
			query: DealQuery{
				ReservedOnly: true,
			},
			wantDataHas:  []string{"WHERE reserved = true"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE reserved = true",
			wantArgs:     nil,
		},
		{
			name: "multiple filters with correct parameter numbering",
			query: DealQuery{
				Status:       ptr("to_contact"),
				BuyerID:      ptr("buyer-1"),
				ReservedOnly: true,
			},
			wantDataHas: []string{
				"status = $1",
				"buyer_id = $2",
				"reserved = true",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE status = $1 AND buyer_id = $2 AND reserved = true",
			wantArgs:     []any{"to_contact", "buyer-1"},
		},
		{
			name: "order by reserved_until",
			query: DealQuery{
				OrderBy: "reserved_until",
			},
			wantDataHas: []string{"ORDER BY reserved_until ASC NULLS LAST"},
		},
		{
			name: "order by stage_entered_at",
			query: DealQuery{
				OrderBy: "stage_entered_at",
			},
			wantDataHas: []string{"ORDER BY stage_entered_at DESC"},
		},
		{
			name: "invalid order by falls back to default",
			query: DealQuery{
				OrderBy: "DROP TABLE deals; --",
			},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name: "custom limit and offset",
			query: DealQuery{
				Limit:  25,
				Offset: 100,
			},
			wantDataHas: []string{
				"LIMIT 25",
				"OFFSET 100",
			},
		},
		{
			name: "limit exceeding max is capped",
			query: DealQuery{
				Limit: 1000,
			},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name: "negative limit defaults to 50",
			query: DealQuery{
				Limit: -10,
			},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name: "negative offset defaults to 0",
			query: DealQuery{
				Offset: -5,
			},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
			wantArgs:      nil,
		},
		{
			name: "sector filter",
			query: ListingQuery{
				Sector: ptr("restauration"),
			},
			wantDataHas:  []string{"WHERE industry_sector = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE industry_sector = $1",
			wantArgs:     []any{"restauration"},
		},
		{
			name: "department filter",
			query: ListingQuery{
				Department: ptr("75"),
			},
			wantDataHas:  []string{"WHERE location_department = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE location_department = $1",
			wantArgs:     []any{"75"},
		},
		{
			name: "status filter",
			query: ListingQuery{
				Status: ptr("available"),
			},
			wantDataHas:  []string{"WHERE status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE status = $1",
			wantArgs:     []any{"available"},
		},
		{
			name: "all filters with correct parameter numbering",
			query: ListingQuery{
				Sector:     ptr("commerce"),
				Department: ptr("33"),
				Status:     ptr("available"),
			},
			wantDataHas: []string{
				"industry_sector = $1",
				"location_department = $2",
				"status = $3",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE industry_sector = $1 AND location_department = $2 AND status = $3",
			wantArgs:     []any{"commerce", "33", "available"},
		},
		{
			name: "order by annual_revenue",
			query: ListingQuery{
				OrderBy: "annual_revenue",
			},
			wantDataHas: []string{"ORDER BY annual_revenue DESC NULLS LAST"},
		},
		{
			name: "order by employee_count",
			query: ListingQuery{
				OrderBy: "employee_count",
			},
			wantDataHas: []string{"ORDER BY employee_count DESC NULLS LAST"},
		},
		{
			name: "invalid order by falls back to default",
			query: ListingQuery{
				OrderBy: "DROP TABLE listings; --",
			},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name: "limit exceeding max is capped",
			query: ListingQuery{
				Limit: 9999,
			},
			wantDataHas: []string{"LIMIT 500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}
