package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the logged-in account and its assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		acc, err := st.Sessions().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if acc == nil {
			fmt.Println("Not logged in. Run `upjobs` to sign in.")
			return nil
		}

		fmt.Printf("%-22s %s\n", "Name", acc.Name)
		fmt.Printf("%-22s %s\n", "Email", acc.Email)

		rec := acc.Assessment
		if rec == nil {
			fmt.Println("\nNo assessment yet.")
			return nil
		}

		fmt.Println(strings.Repeat("─", 48))
		if rec.GrossHourlyValue != nil {
			fmt.Printf("%-22s R$ %.2f\n", "Gross hourly value", *rec.GrossHourlyValue)
		}
		if rec.NetHourlyValue != nil {
			fmt.Printf("%-22s R$ %.2f\n", "Net hourly value", *rec.NetHourlyValue)
		}
		if len(rec.SelectedAreas) > 0 {
			labels := make([]string, len(rec.SelectedAreas))
			for i, id := range rec.SelectedAreas {
				labels[i] = areas.Label(id)
			}
			fmt.Printf("%-22s %s\n", "Interest areas", strings.Join(labels, ", "))
		}
		if rec.DiscProfile != nil && rec.DiscScores != nil {
			fmt.Printf("%-22s %s (%s)\n", "Behavioral profile", rec.DiscProfile.String(), rec.DiscProfile.Symbol())
			for _, t := range disc.Traits {
				fmt.Printf("  %-20s %d\n", t.String(), rec.DiscScores.Of(t))
			}
		}

		status := "in progress"
		if rec.Completed {
			status = "complete"
		}
		fmt.Printf("%-22s %s\n", "Status", status)
		return nil
	},
}
