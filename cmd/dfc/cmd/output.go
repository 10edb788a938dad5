package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	apiclient "github.com/mpoirier/dealflow/internal/api/client"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printDealsTable(deals []domain.Deal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tLISTING\tBUYER\tSTAGE\tRESERVED\tUNTIL\n")
	for i := range deals {
		d := &deals[i]
		until := "-"
		if d.ReservedUntil != nil {
			until = d.ReservedUntil.Format("2006-01-02")
		}
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			d.ID,
			d.ListingID,
			d.BuyerID,
			d.Status,
			d.Reserved,
			until,
		)
	}
	return tw.finish()
}

func printDealDetail(d *domain.Deal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Listing:\t%s\n", d.ListingID)
	tw.writef("Buyer:\t%s\n", d.BuyerID)
	tw.writef("Stage:\t%s\n", d.Status)
	tw.writef("Reserved:\t%v\n", d.Reserved)
	tw.writef("Entered:\t%s\n", d.StageEnteredAt.Format("2006-01-02 15:04:05"))
	if d.ReservedUntil != nil {
		tw.writef("Until:\t%s\n", d.ReservedUntil.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printTimerDetail(ts *apiclient.TimerStatus) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Deal:\t%s\n", ts.DealID)
	tw.writef("Stage:\t%s\n", ts.Stage)
	tw.writef("Reserved:\t%v\n", ts.Reserved)
	tw.writef("Entered:\t%s\n", ts.StageEnteredAt.Format("2006-01-02 15:04:05"))
	if ts.ReservedUntil != nil {
		tw.writef("Until:\t%s\n", ts.ReservedUntil.Format("2006-01-02 15:04:05"))
	}
	if ts.DaysRemaining != nil {
		tw.writef("Days Left:\t%d\n", *ts.DaysRemaining)
	}
	if ts.ProgressPercent != nil {
		tw.writef("Progress:\t%d%%\n", *ts.ProgressPercent)
	}
	tw.writef("Expired:\t%v\n", ts.Expired)
	tw.writef("Running Low:\t%v\n", ts.RunningLow)
	return tw.finish()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tSECTOR\tDEPT\tREVENUE\tPRICE\tSTATUS\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			l.IndustrySector,
			l.LocationDepartment,
			fmtMoney(l.AnnualRevenue),
			fmtMoney(l.AskingPrice),
			l.Status,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Seller:\t%s\n", l.SellerID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Sector:\t%s\n", l.IndustrySector)
	tw.writef("Department:\t%s\n", l.LocationDepartment)
	tw.writef("Revenue:\t%s\n", fmtMoney(l.AnnualRevenue))
	tw.writef("Employees:\t%s\n", fmtCount(l.EmployeeCount))
	tw.writef("Transfer:\t%s\n", l.TransferType)
	tw.writef("Customers:\t%s\n", l.CustomerType)
	tw.writef("Price:\t%s\n", fmtMoney(l.AskingPrice))
	tw.writef("Status:\t%s\n", l.Status)
	return tw.finish()
}

func printProfilesTable(profiles []domain.BuyerProfile) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("BUYER\tSECTORS\tLOCATIONS\tREVENUE\tEMPLOYEES\n")
	for i := range profiles {
		p := &profiles[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			p.BuyerID,
			truncate(strings.Join(p.TargetSectors, ","), 30),
			truncate(strings.Join(p.TargetLocations, ","), 20),
			fmtRange(fmtMoney(p.TargetRevenueMin), fmtMoney(p.TargetRevenueMax)),
			fmtRange(fmtCount(p.TargetEmployeesMin), fmtCount(p.TargetEmployeesMax)),
		)
	}
	return tw.finish()
}

func printProfileDetail(p *domain.BuyerProfile) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Buyer:\t%s\n", p.BuyerID)
	tw.writef("Sectors:\t%s\n", strings.Join(p.TargetSectors, ", "))
	tw.writef("Locations:\t%s\n", strings.Join(p.TargetLocations, ", "))
	tw.writef("Revenue:\t%s\n", fmtRange(fmtMoney(p.TargetRevenueMin), fmtMoney(p.TargetRevenueMax)))
	tw.writef("Employees:\t%s\n", fmtRange(fmtCount(p.TargetEmployeesMin), fmtCount(p.TargetEmployeesMax)))
	tw.writef("Transfers:\t%s\n", strings.Join(p.TargetTransferTypes, ", "))
	tw.writef("Customers:\t%s\n", strings.Join(p.TargetCustomerTypes, ", "))
	return tw.finish()
}

func printMatchesTable(matches []domain.Match) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SCORE\tID\tTITLE\tSECTOR\tDEPT\tPRICE\n")
	for i := range matches {
		m := &matches[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\n",
			m.Score,
			m.Listing.ID,
			truncate(m.Listing.Title, 40),
			m.Listing.IndustrySector,
			m.Listing.LocationDepartment,
			fmtMoney(m.Listing.AskingPrice),
		)
	}
	return tw.finish()
}

func printAlertsTable(alerts []domain.MatchAlert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tBUYER\tLISTING\tSCORE\tCREATED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\n",
			a.ID,
			a.BuyerID,
			a.ListingID,
			a.Score,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			fmtCount(r.RowsAffected),
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printSystemState(s *domain.SystemState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Listings:\t%d\n", s.ListingsTotal)
	tw.writef("  Available:\t%d\n", s.ListingsAvailable)
	tw.writef("  Reserved:\t%d\n", s.ListingsReserved)
	tw.writef("Deals:\t%d\n", s.DealsTotal)
	tw.writef("  Reserved:\t%d\n", s.DealsReserved)
	tw.writef("  Expired:\t%d\n", s.DealsExpired)
	tw.writef("Buyer Profiles:\t%d\n", s.BuyerProfiles)
	tw.writef("Pending Alerts:\t%d\n", s.AlertsPending)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fmtMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("€%.0f", *v)
}

func fmtCount(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtRange(low, high string) string {
	if low == "-" && high == "-" {
		return "-"
	}
	return low + " to " + high
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
