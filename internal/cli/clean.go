package cli

import (
	"github.com/charliek/logfinder/internal/cleanup"
	"github.com/charliek/logfinder/internal/finder"
	"github.com/spf13/cobra"
)

// newCleanCmd represents the clean command
func newCleanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the text files written by earlier searches",
		Long: `Remove every i-, e- and s- prefixed text file from the search directory.

Log files and the run history are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			console := finder.NewConsole(cmd.OutOrStdout())
			removed, err := cleanup.Remove(*cfg, console.Removed)
			if err != nil {
				return err
			}
			if len(removed) == 0 {
				console.NothingRemoved()
			}
			return nil
		},
	}
}
