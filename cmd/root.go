package cmd

import (
	"github.com/spf13/cobra"
	"github.com/upjobs/upjobs/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "upjobs",
	Short: "Career self-assessment in your terminal",
	Long:  "UpJobs — a guided self-assessment that computes what your working hour is worth, maps your areas of interest, and profiles how you work.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UPJOBS_DB env var)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UPJOBS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
