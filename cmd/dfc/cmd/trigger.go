package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Release deals with lapsed reservations",
		Long: "Runs an expiry sweep: every deal whose reservation deadline has passed\n" +
			"is released and its listing returned to the marketplace.",
		Example: `  dfc sweep`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			released, err := c.TriggerSweep(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Released %d deals.\n", released)
			return nil
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Recompute matches and deliver alerts",
		Long: "Recomputes matches for every buyer with stated criteria, records alerts\n" +
			"for high-scoring new matches, and delivers the pending alert queue.",
		Example: `  dfc refresh`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			recorded, err := c.TriggerMatchRefresh(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %d match alerts.\n", recorded)
			return nil
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "state",
		Short:   "Show aggregate pipeline counts",
		Example: `  dfc state`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			s, err := c.GetSystemState(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			return printSystemState(s)
		},
	}
}
