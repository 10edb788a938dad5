package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

func buyersCmd() *cobra.Command {
	buyersRoot := &cobra.Command{
		Use:   "buyers",
		Short: "Manage buyer search profiles",
		Long: "Inspect and replace buyer acquisition criteria. A profile drives the\n" +
			"match scoring that pairs buyers with compatible listings.",
	}

	buyersRoot.AddCommand(
		buyersListCmd(),
		buyersGetCmd(),
		buyersSetCmd(),
	)

	return buyersRoot
}

func buyersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List buyer search profiles",
		Example: `  dfc buyers list`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			profiles, err := c.ListBuyerProfiles(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(profiles)
			}

			if len(profiles) == 0 {
				fmt.Println("No buyer profiles found.")
				return nil
			}

			return printProfilesTable(profiles)
		},
	}
}

func buyersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <buyer_id>",
		Short:   "Show a buyer's search profile",
		Example: `  dfc buyers get b-123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetBuyerProfile(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(p)
			}

			return printProfileDetail(p)
		},
	}
}

func buyersSetCmd() *cobra.Command {
	var (
		sectors       string
		locations     string
		revenueMin    float64
		revenueMax    float64
		employeesMin  int
		employeesMax  int
		transferTypes string
		customerTypes string
	)

	cmd := &cobra.Command{
		Use:   "set <buyer_id>",
		Short: "Replace a buyer's search profile",
		Long: "Replaces the buyer's search profile wholesale. Criteria omitted from\n" +
			"the command are cleared.",
		Example: `  dfc buyers set b-123 --sectors restauration,boulangerie --locations 75,92
  dfc buyers set b-123 --revenue-min 100000 --revenue-max 500000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.BuyerProfile{
				BuyerID:             args[0],
				TargetSectors:       splitList(sectors),
				TargetLocations:     splitList(locations),
				TargetTransferTypes: splitList(transferTypes),
				TargetCustomerTypes: splitList(customerTypes),
			}
			if cmd.Flags().Changed("revenue-min") {
				p.TargetRevenueMin = &revenueMin
			}
			if cmd.Flags().Changed("revenue-max") {
				p.TargetRevenueMax = &revenueMax
			}
			if cmd.Flags().Changed("employees-min") {
				p.TargetEmployeesMin = &employeesMin
			}
			if cmd.Flags().Changed("employees-max") {
				p.TargetEmployeesMax = &employeesMax
			}

			c := newClient()
			saved, err := c.PutBuyerProfile(context.Background(), p)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(saved)
			}

			return printProfileDetail(saved)
		},
	}
	cmd.Flags().StringVar(&sectors, "sectors", "", "comma-separated industry sectors")
	cmd.Flags().StringVar(&locations, "locations", "", "comma-separated department codes")
	cmd.Flags().Float64Var(&revenueMin, "revenue-min", 0, "minimum annual revenue in EUR")
	cmd.Flags().Float64Var(&revenueMax, "revenue-max", 0, "maximum annual revenue in EUR")
	cmd.Flags().IntVar(&employeesMin, "employees-min", 0, "minimum employee headcount")
	cmd.Flags().IntVar(&employeesMax, "employees-max", 0, "maximum employee headcount")
	cmd.Flags().StringVar(&transferTypes, "transfer-types", "", "comma-separated transfer types")
	cmd.Flags().StringVar(&customerTypes, "customer-types", "", "comma-separated customer base types")

	return cmd
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
