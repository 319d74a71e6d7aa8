package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recent searches, newest first",
		Long: `List the logins of the most recent successful searches.

History is only kept across runs when a postgres or redis backend is
configured (ANALYZER_HISTORY_BACKEND or --history-backend).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recent, closer := a.openHistory(cmd.Context())
			defer closer.Close()

			entries := recent.List()
			if len(entries) == 0 {
				a.printer.Info("No recent searches")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for i, login := range entries {
				rows = append(rows, []string{strconv.Itoa(i + 1), login})
			}
			return a.printer.Table([]string{"#", "Login"}, rows)
		},
	}
}
