package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/toyvox/internal/arcade"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tokens, collection and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false, arcade.Options{})
		if err != nil {
			return err
		}
		defer s.Close()
		return writeStats(cmd.Context(), cmd.OutOrStdout(), s.svc)
	},
}

func writeStats(ctx context.Context, w io.Writer, svc *arcade.Services) error {
	p := svc.Progress()
	fmt.Fprintf(w, "Tokens:      %d\n", p.Tokens)
	fmt.Fprintf(w, "Collection:  %d/%d characters\n", p.Unlocked, p.Total)

	if svc.Events == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := svc.Events.ActivityStats(ctx)
	if err != nil {
		return fmt.Errorf("activity stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Trivia games:     %d (best %d tokens, %d earned)\n", st.TriviaGames, st.BestTriviaTokens, st.TriviaTokens)
	fmt.Fprintf(w, "Wheel spins:      %d (%d characters, %d tokens won)\n", st.Spins, st.CharacterWins, st.WheelTokens)
	fmt.Fprintf(w, "Tokens spent:     %d\n", st.TokensSpent)
	fmt.Fprintf(w, "Progress resets:  %d\n", st.Resets)
	return nil
}
