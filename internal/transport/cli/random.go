package cli

import (
	"fmt"
	"io"

	"github.com/go-ulid/internal/domain"
	"github.com/spf13/cobra"
)

func newRandomCommand(svc ULIDService) *cobra.Command {
	var (
		timestamp string
		random    string
		zeroed    bool
		oned      bool
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:     "random",
		Aliases: []string{"new", "generate"},
		Short:   "Generate a random ulid",
		Long: `Generate a ulid for the current time, or for --timestamp.

The random portion can be fixed with --random, or filled with zeros (-0)
or ones (-1). With --stdin a JSON document is read instead: null, a date
string, or a record like {"timestamp": "2024-03-19T11:46:00", "random": 12345}.
Flags override fields read from stdin.`,
		Example: `  ulid random
  ulid random --timestamp 2024-03-19T11:46:00
  ulid random --zeroed
  echo '{"random": "12345"}' | ulid random --stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.Input
			if fromStdin {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				if in, err = domain.DecodeInput(raw); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("timestamp") {
				in.Timestamp = &timestamp
			}
			if cmd.Flags().Changed("random") {
				in.Random = &random
			}

			req, err := svc.Resolve(in)
			if err != nil {
				return err
			}
			req.Zeroed, req.Oned = zeroed, oned

			out, err := svc.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", "Timestamp to encode (RFC 3339, date, or unix milliseconds)")
	cmd.Flags().StringVarP(&random, "random", "r", "", "Unsigned integer to use as the random portion")
	cmd.Flags().BoolVarP(&zeroed, "zeroed", "0", false, "Fill the random portion of the ulid with zeros")
	cmd.Flags().BoolVarP(&oned, "oned", "1", false, "Fill the random portion of the ulid with ones")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read a JSON date or record from stdin")
	return cmd
}
