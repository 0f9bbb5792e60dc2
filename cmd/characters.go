package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/toyvox/internal/arcade"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the character catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false, arcade.Options{})
		if err != nil {
			return err
		}
		defer s.Close()
		writeCharacters(cmd.OutOrStdout(), s.svc)
		return nil
	},
}

func writeCharacters(w io.Writer, svc *arcade.Services) {
	for _, c := range svc.Catalog.All() {
		mark := "  "
		if svc.Ledger.IsCharacterUnlocked(c.ID) {
			mark = "★ "
		}
		fmt.Fprintf(w, "%s%-16s %-20s %s\n", mark, c.ID, c.Name, c.Franchise)
	}
	p := svc.Progress()
	fmt.Fprintf(w, "\n%d/%d unlocked\n", p.Unlocked, p.Total)
}
