package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/mpoirier/dealflow/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query marketplace listings",
		Long: "Query and inspect business-sale listings, including their marketplace\n" +
			"status (available, reserved, sold, withdrawn).",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		sector     string
		department string
		status     string
		limit      int
		offset     int
		orderBy    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Example: `  # List all listings
  dfc listings list

  # Available restaurants in department 75
  dfc listings list --sector restauration --department 75 --status available

  # Sort by revenue with pagination
  dfc listings list --order-by annual_revenue --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				Sector:     sector,
				Department: department,
				Status:     status,
				Limit:      limit,
				Offset:     offset,
				OrderBy:    orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}
	cmd.Flags().StringVar(&sector, "sector", "", "industry sector filter")
	cmd.Flags().StringVar(&department, "department", "", "department code filter")
	cmd.Flags().StringVar(&status, "status", "", "marketplace status filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (created_at, annual_revenue, employee_count)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  dfc listings get l-456`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}
}
