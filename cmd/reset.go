package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/toyvox/internal/arcade"
)

// ErrResetNotConfirmed is returned when reset runs without --yes.
var ErrResetNotConfirmed = errors.New("reset erases all tokens and characters; rerun with --yes to confirm")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase tokens and unlocked characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return ErrResetNotConfirmed
		}
		s, err := openSession(cmd, false, arcade.Options{})
		if err != nil {
			return err
		}
		defer s.Close()
		resetProgress(cmd.OutOrStdout(), s.svc)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}

func resetProgress(w io.Writer, svc *arcade.Services) {
	svc.Ledger.ResetProgress()
	svc.Wheel.Rebuild()
	fmt.Fprintln(w, "Progress reset. Fresh start!")
}
