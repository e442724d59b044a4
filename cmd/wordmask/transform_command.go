package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wordmask/internal/mask"
	"wordmask/internal/mask/htmlmask"
	"wordmask/internal/session"
)

func newTransformCommand(ctx *commandContext) *cobra.Command {
	var htmlMode bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "transform [text...]",
		Short: "Mask banned words in text",
		Long: `Mask every banned word in the given text using the stored mapping.

Text is taken from the arguments, or read from stdin when no arguments are
given or the only argument is "-". Stdin is masked as one text, so line
breaks stay inside the tokens they touch.`,
		Example: `  wordmask transform say hello world
  cat captions.txt | wordmask transform
  wordmask transform --html < page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readTransformInput(cmd, args)
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				var (
					output string
					stats  mask.Stats
				)
				if htmlMode {
					output, stats, err = htmlmask.TransformWithStats(input, mask.NewWordSet(sess.BannedWords()), sess.Mapping())
					if err != nil {
						return fmt.Errorf("transform html: %w", err)
					}
				} else {
					sess.SetInput(input)
					output = sess.RunTransform()
					stats = sess.Stats()
				}

				if jsonOutput {
					return writeJSON(cmd, transformJSON{
						Input:       input,
						Output:      output,
						BannedWords: sess.BannedWords(),
						Mapping:     sess.MappingSpec(),
						Stats:       stats,
					})
				}
				if strings.HasSuffix(output, "\n") {
					fmt.Fprint(cmd.OutOrStdout(), output)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), output)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&htmlMode, "html", false, "Treat input as HTML and mask only text nodes")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func readTransformInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
