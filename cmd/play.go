package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the arcade",
	RunE: func(cmd *cobra.Command, args []string) error {
		skip, _ := cmd.Flags().GetBool("skip-welcome")
		return runApp(cmd, skip)
	},
}

func init() {
	playCmd.Flags().Bool("skip-welcome", false, "Go straight to the home screen")
}
