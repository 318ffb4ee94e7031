package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/upjobs/upjobs/internal/app"
	"github.com/upjobs/upjobs/internal/insight"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sess := session.New(st.Accounts(), st.Sessions())
	if err := sess.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	provider, err := insight.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Results will use built-in guidance instead.")
		provider = nil
	}

	return app.Run(app.Options{
		Session:  sess,
		Insights: insight.NewService(provider),
	})
}
