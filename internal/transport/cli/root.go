package cli

import (
	"fmt"

	"github.com/go-ulid/internal/config"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// NewRoot constructs the root command and registers the random, parse and
// version subcommands.
func NewRoot(svc ULIDService, cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "ulid",
		Short:         "Generate and inspect ULIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRandomCommand(svc))
	root.AddCommand(newParseCommand(svc, cfg))
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ulid %s (%s)\n", Version, Commit)
		},
	}
}
