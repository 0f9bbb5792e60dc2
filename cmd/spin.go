package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/toyvox/internal/arcade"
	"github.com/abhisek/toyvox/internal/rng"
	"github.com/abhisek/toyvox/internal/wheel"
)

// ErrInsufficientTokens is returned when the balance cannot cover a spin.
var ErrInsufficientTokens = errors.New("not enough tokens to spin")

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spend tokens on one prize wheel spin",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts arcade.Options
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts.Source = rng.NewSeeded(seed)
		}
		s, err := openSession(cmd, false, opts)
		if err != nil {
			return err
		}
		defer s.Close()
		return spinOnce(cmd.OutOrStdout(), s.svc)
	},
}

func init() {
	spinCmd.Flags().Uint64("seed", 0, "Seed the wheel for a reproducible spin")
}

// spinOnce pays for a spin and resolves it immediately.
func spinOnce(w io.Writer, svc *arcade.Services) error {
	ticket, ok := svc.Wheel.Spin()
	if !ok {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientTokens, svc.Ledger.Balance(), wheel.SpinCost)
	}
	res, ok := svc.Wheel.Stop(ticket)
	if !ok {
		return fmt.Errorf("spin %s did not resolve", ticket.ID)
	}

	switch {
	case res.NewUnlock:
		fmt.Fprintf(w, "Unlocked %s!\n", svc.Catalog.Name(res.Outcome.CharacterID))
	case res.Duplicate:
		fmt.Fprintf(w, "%s again. Already in your collection.\n", svc.Catalog.Name(res.Outcome.CharacterID))
	case res.TokensAwarded > 0:
		fmt.Fprintf(w, "Won %d tokens!\n", res.TokensAwarded)
	default:
		fmt.Fprintln(w, "No win this time.")
	}
	fmt.Fprintf(w, "Balance: %d\n", svc.Ledger.Balance())
	return nil
}
