// Package domain defines the core business types for dealflow.
package domain

import (
	"slices"
	"time"
)

// Stage represents a deal's position in the acquisition pipeline.
type Stage string

// Pipeline stage constants, in pipeline order.
const (
	StageFavorited        Stage = "favorited"
	StageToContact        Stage = "to_contact"
	StageInfoExchange     Stage = "info_exchange"
	StageAnalysis         Stage = "analysis"
	StageProjectAlignment Stage = "project_alignment"
	StageNegotiation      Stage = "negotiation"
	StageLOI              Stage = "loi"
	StageAudits           Stage = "audits"
	StageFinancing        Stage = "financing"
	StageDealSigned       Stage = "deal_signed"
	StageReleased         Stage = "released"
	StageAbandoned        Stage = "abandoned"
)

// Stages lists every pipeline stage in order.
var Stages = []Stage{
	StageFavorited,
	StageToContact,
	StageInfoExchange,
	StageAnalysis,
	StageProjectAlignment,
	StageNegotiation,
	StageLOI,
	StageAudits,
	StageFinancing,
	StageDealSigned,
	StageReleased,
	StageAbandoned,
}

// Valid reports whether s is a known pipeline stage.
func (s Stage) Valid() bool {
	return slices.Contains(Stages, s)
}

// ListingStatus represents a listing's availability on the marketplace.
type ListingStatus string

// Listing status constants.
const (
	ListingAvailable ListingStatus = "available"
	ListingReserved  ListingStatus = "reserved"
	ListingSold      ListingStatus = "sold"
	ListingWithdrawn ListingStatus = "withdrawn"
)

// Deal tracks one buyer's claim on one listing through the pipeline.
// Timer fields (StageEnteredAt, ReservedUntil, Reserved) are recomputed
// exactly once per stage transition and never mutated directly.
type Deal struct {
	ID        string `json:"id"         db:"id"`
	ListingID string `json:"listing_id" db:"listing_id"`
	BuyerID   string `json:"buyer_id"   db:"buyer_id"`

	Status         Stage      `json:"status"                   db:"status"`
	StageEnteredAt time.Time  `json:"stage_entered_at"         db:"stage_entered_at"`
	ReservedUntil  *time.Time `json:"reserved_until,omitempty" db:"reserved_until"`
	Reserved       bool       `json:"reserved"                 db:"reserved"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BuyerProfile holds a buyer's stated acquisition criteria.
// All fields are optional; empty sets and nil bounds mean "no preference".
type BuyerProfile struct {
	BuyerID string `json:"buyer_id" db:"buyer_id"`

	TargetSectors       []string `json:"target_sectors"                 db:"target_sectors"`
	TargetLocations     []string `json:"target_locations"               db:"target_locations"`
	TargetRevenueMin    *float64 `json:"target_revenue_min,omitempty"   db:"target_revenue_min"`
	TargetRevenueMax    *float64 `json:"target_revenue_max,omitempty"   db:"target_revenue_max"`
	TargetEmployeesMin  *int     `json:"target_employees_min,omitempty" db:"target_employees_min"`
	TargetEmployeesMax  *int     `json:"target_employees_max,omitempty" db:"target_employees_max"`
	TargetTransferTypes []string `json:"target_transfer_types"          db:"target_transfer_types"`
	TargetCustomerTypes []string `json:"target_customer_types"          db:"target_customer_types"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasCriteria reports whether at least one matching criterion is set.
func (p *BuyerProfile) HasCriteria() bool {
	return len(p.TargetSectors) > 0 ||
		len(p.TargetLocations) > 0 ||
		p.TargetRevenueMin != nil || p.TargetRevenueMax != nil ||
		p.TargetEmployeesMin != nil || p.TargetEmployeesMax != nil ||
		len(p.TargetTransferTypes) > 0 ||
		len(p.TargetCustomerTypes) > 0
}

// Listing represents a business for sale. Attribute fields may be absent
// when the seller has not disclosed them.
type Listing struct {
	ID       string `json:"id"        db:"id"`
	SellerID string `json:"seller_id" db:"seller_id"`
	Title    string `json:"title"     db:"title"`

	IndustrySector     string   `json:"industry_sector,omitempty"     db:"industry_sector"`
	LocationDepartment string   `json:"location_department,omitempty" db:"location_department"`
	AnnualRevenue      *float64 `json:"annual_revenue,omitempty"      db:"annual_revenue"`
	EmployeeCount      *int     `json:"employee_count,omitempty"      db:"employee_count"`
	TransferType       string   `json:"transfer_type,omitempty"       db:"transfer_type"`
	CustomerType       string   `json:"customer_type,omitempty"       db:"customer_type"`
	AskingPrice        *float64 `json:"asking_price,omitempty"        db:"asking_price"`

	Status ListingStatus `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Match pairs a listing with its compatibility score for one buyer.
// Matches are computed on demand and never persisted.
type Match struct {
	Listing Listing `json:"listing"`
	Score   int     `json:"score"`
}

// MatchAlert records a high-scoring match pending buyer notification.
type MatchAlert struct {
	ID         string     `json:"id"                    db:"id"`
	BuyerID    string     `json:"buyer_id"              db:"buyer_id"`
	ListingID  string     `json:"listing_id"            db:"listing_id"`
	Score      int        `json:"score"                 db:"score"`
	Notified   bool       `json:"notified"              db:"notified"`
	NotifiedAt *time.Time `json:"notified_at,omitempty" db:"notified_at"`
	CreatedAt  time.Time  `json:"created_at"            db:"created_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// SystemState holds a precomputed snapshot of aggregate pipeline metrics.
type SystemState struct {
	ListingsTotal     int `json:"listings_total"     db:"listings_total"`
	ListingsAvailable int `json:"listings_available" db:"listings_available"`
	ListingsReserved  int `json:"listings_reserved"  db:"listings_reserved"`
	DealsTotal        int `json:"deals_total"        db:"deals_total"`
	DealsReserved     int `json:"deals_reserved"     db:"deals_reserved"`
	DealsExpired      int `json:"deals_expired"      db:"deals_expired"`
	BuyerProfiles     int `json:"buyer_profiles"     db:"buyer_profiles"`
	AlertsPending     int `json:"alerts_pending"     db:"alerts_pending"`
}
