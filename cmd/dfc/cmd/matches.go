package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func matchesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "matches <buyer_id>",
		Short: "Show scored listings for a buyer",
		Long: "Scores every available listing against the buyer's search profile and\n" +
			"prints the compatible ones, best match first.",
		Example: `  dfc matches b-123
  dfc matches b-123 --limit 5 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.GetMatches(context.Background(), args[0], limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Matches) == 0 {
				fmt.Printf("No matches found for buyer %q.\n", args[0])
				return nil
			}

			return printMatchesTable(resp.Matches)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum matches returned")

	return cmd
}

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "alerts",
		Short:   "List match alerts pending delivery",
		Example: `  dfc alerts`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			alerts, err := c.ListPendingAlerts(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(alerts)
			}

			if len(alerts) == 0 {
				fmt.Println("No pending alerts.")
				return nil
			}

			return printAlertsTable(alerts)
		},
	}
}
