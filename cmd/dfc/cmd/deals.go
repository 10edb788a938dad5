package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/mpoirier/dealflow/internal/api/client"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

func dealsCmd() *cobra.Command {
	dealsRoot := &cobra.Command{
		Use:   "deals",
		Short: "Manage deals and their reservation timers",
		Long: "Inspect deals moving through the pipeline, open new deals, move them\n" +
			"between stages, and check how much reservation time remains.",
	}

	dealsRoot.AddCommand(
		dealsListCmd(),
		dealsGetCmd(),
		dealsCreateCmd(),
		dealsStageCmd(),
		dealsTimerCmd(),
	)

	return dealsRoot
}

func dealsListCmd() *cobra.Command {
	var (
		stage        string
		buyerID      string
		listingID    string
		reservedOnly bool
		limit        int
		offset       int
		orderBy      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals with optional filters",
		Example: `  # List all deals
  dfc deals list

  # Deals currently holding a reservation
  dfc deals list --reserved-only

  # A buyer's deals in negotiation, soonest deadline first
  dfc deals list --buyer b123 --stage negotiation --order-by reserved_until`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListDeals(context.Background(), &apiclient.ListDealsParams{
				Stage:        stage,
				BuyerID:      buyerID,
				ListingID:    listingID,
				ReservedOnly: reservedOnly,
				Limit:        limit,
				Offset:       offset,
				OrderBy:      orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Deals) == 0 {
				fmt.Println("No deals found.")
				return nil
			}

			fmt.Printf("Showing %d of %d deals\n\n", len(resp.Deals), resp.Total)
			return printDealsTable(resp.Deals)
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "pipeline stage filter")
	cmd.Flags().StringVar(&buyerID, "buyer", "", "buyer ID filter")
	cmd.Flags().StringVar(&listingID, "listing", "", "listing ID filter")
	cmd.Flags().BoolVar(&reservedOnly, "reserved-only", false, "only deals holding a reservation")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (created_at, stage_entered_at, reserved_until)")

	return cmd
}

func dealsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show deal details",
		Example: `  dfc deals get d-abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			d, err := c.GetDeal(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(d)
			}

			return printDealDetail(d)
		},
	}
}

func dealsCreateCmd() *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "create <listing_id> <buyer_id>",
		Short: "Open a deal between a buyer and a listing",
		Example: `  dfc deals create l-456 b-123
  dfc deals create l-456 b-123 --stage to_contact`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			d, err := c.CreateDeal(context.Background(), args[0], args[1], domain.Stage(stage))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(d)
			}

			fmt.Printf("Created deal %s in stage %s.\n", d.ID, d.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "initial stage (defaults to favorited)")

	return cmd
}

func dealsStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage <id> <stage>",
		Short: "Move a deal to a new pipeline stage",
		Long: "Moves a deal to a new pipeline stage. Entering a timed stage arms or\n" +
			"resets the reservation timer; entering loi reserves the listing without\n" +
			"a deadline.",
		Example: `  dfc deals stage d-abc123 negotiation
  dfc deals stage d-abc123 abandoned`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			d, err := c.ChangeStage(context.Background(), args[0], domain.Stage(args[1]))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(d)
			}

			return printDealDetail(d)
		},
	}
}

func dealsTimerCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "timer <id>",
		Short:   "Show a deal's reservation countdown",
		Example: `  dfc deals timer d-abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			ts, err := c.GetTimerStatus(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(ts)
			}

			return printTimerDetail(ts)
		},
	}
}
