package cli

import (
	"fmt"

	"github.com/charliek/logfinder/internal/finder"
	"github.com/charliek/logfinder/internal/history"
	"github.com/spf13/cobra"
)

// newHistoryCmd represents the history command
func newHistoryCmd(opts *options) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or purge the run history",
		Long: `Show the arguments of every previous search, one line per run.

Examples:
  log-finder history          # Show the history
  log-finder history --purge  # Delete every record`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			h := history.New(cfg.HistoryPath())
			if purge {
				if err := h.Purge(); err != nil {
					return err
				}
				finder.NewConsole(cmd.OutOrStdout()).HistoryPurged(cfg.HistoryFile)
				return nil
			}

			content, err := h.Read()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Delete every record of the history file")
	return cmd
}
