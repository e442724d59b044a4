package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordmask/internal/mask"
	"wordmask/internal/session"
)

func newMappingCommand(ctx *commandContext) *cobra.Command {
	mappingCmd := &cobra.Command{
		Use:   "mapping",
		Short: "Manage the character mapping",
	}

	mappingCmd.AddCommand(newMappingShowCommand(ctx))
	mappingCmd.AddCommand(newMappingSetCommand(ctx))

	return mappingCmd
}

func newMappingShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored mapping and the pairs parsed from it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				spec := sess.MappingSpec()
				pairs := sess.Mapping().Pairs()
				if jsonOutput {
					return writeJSON(cmd, mappingJSON{Spec: spec, Pairs: pairs})
				}
				out := cmd.OutOrStdout()
				if strings.TrimSpace(spec) == "" {
					fmt.Fprintln(out, "No mapping set")
					return nil
				}
				fmt.Fprintf(out, "Mapping: %s\n", spec)
				if len(pairs) == 0 {
					fmt.Fprintln(out, "No valid letter:replacement pairs")
					return nil
				}
				fmt.Fprintln(out, renderPairsTable(pairs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderPairsTable(pairs []mask.Pair) string {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair.Letter, pair.Replacement})
	}
	return renderTable([]string{"Letter", "Replacement"}, rows)
}

func newMappingSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "set <letter:replacement,...>",
		Short:   "Replace the character mapping",
		Example: `  wordmask mapping set "a:@,o:0,e:3"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := strings.Join(args, ",")
			return ctx.withSession(cmd, func(c context.Context, sess *session.Session) error {
				sess.SetMapping(c, spec)
				out := cmd.OutOrStdout()
				letters := countLetters(sess.Mapping())
				if letters == 0 {
					fmt.Fprintln(out, "Mapping saved, but it has no valid letter:replacement pairs")
					return nil
				}
				fmt.Fprintf(out, "Mapping saved (%d %s)\n", letters, plural(letters, "letter", "letters"))
				return nil
			})
		},
	}
}

// countLetters counts source letters ignoring case variants.
func countLetters(mapping mask.Mapping) int {
	seen := make(map[string]struct{}, len(mapping))
	for r := range mapping {
		seen[mask.NormalizeWord(string(r))] = struct{}{}
	}
	return len(seen)
}
