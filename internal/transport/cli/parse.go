package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-ulid/internal/config"
	"github.com/go-ulid/internal/domain"
	"github.com/spf13/cobra"
)

func newParseCommand(svc ULIDService, cfg *config.Config) *cobra.Command {
	jsonOutput := cfg.JSONOutput()

	cmd := &cobra.Command{
		Use:   "parse [ULID...]",
		Short: "Parse a ulid into its timestamp and random parts",
		Long: `Parse one or more ulids. With no arguments, ulids are read from stdin,
one per line. The random part is printed as a decimal integer.`,
		Example: `  ulid parse 01HSB8GP600000000000000000
  ulid random | ulid parse --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			if len(inputs) == 0 {
				return fmt.Errorf("%w: no ulid given", domain.ErrInvalidInputType)
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for i, s := range inputs {
				parts, err := svc.Parse(cmd.Context(), s)
				if err != nil {
					return fmt.Errorf("failed to parse ulid: %w", err)
				}
				if jsonOutput {
					if err := enc.Encode(parts); err != nil {
						return err
					}
					continue
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				writeParts(out, parts, cfg.TimeFormat)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", jsonOutput, "Print one JSON record per ulid")
	return cmd
}

func writeParts(w io.Writer, p *domain.Parts, layout string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "timestamp\t%s\n", p.Timestamp.Format(layout))
	fmt.Fprintf(tw, "random\t%s\n", p.Random)
	_ = tw.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
