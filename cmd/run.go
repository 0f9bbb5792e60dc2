package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/toyvox/internal/app"
	"github.com/abhisek/toyvox/internal/arcade"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	s, err := openSession(cmd, true, arcade.Options{})
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(s.svc, app.Options{SkipWelcome: skipWelcome})
}
