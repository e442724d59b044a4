package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordmask/internal/mask"
	"wordmask/internal/session"
)

func newWordsCommand(ctx *commandContext) *cobra.Command {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the banned word list",
	}

	wordsCmd.AddCommand(newWordsListCommand(ctx))
	wordsCmd.AddCommand(newWordsAddCommand(ctx))
	wordsCmd.AddCommand(newWordsImportCommand(ctx))
	wordsCmd.AddCommand(newWordsRemoveCommand(ctx))

	return wordsCmd
}

func newWordsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show banned words",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				words := sess.BannedWords()
				if jsonOutput {
					return writeJSON(cmd, words)
				}
				out := cmd.OutOrStdout()
				if len(words) == 0 {
					fmt.Fprintln(out, "No banned words")
					return nil
				}
				fmt.Fprintln(out, renderWordsTable(words))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderWordsTable(words []string) string {
	rows := make([][]string, 0, len(words))
	for i, word := range words {
		rows = append(rows, []string{strconv.Itoa(i + 1), word})
	}
	return renderTable([]string{"#", "Word"}, rows, 0)
}

func newWordsAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Ban one or more words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(c context.Context, sess *session.Session) error {
				out := cmd.OutOrStdout()
				for _, word := range args {
					word = strings.TrimSpace(word)
					if word == "" {
						continue
					}
					if sess.AddBannedWord(c, word) {
						fmt.Fprintf(out, "Added %s\n", mask.NormalizeWord(word))
					} else {
						fmt.Fprintf(out, "%s is already banned\n", word)
					}
				}
				return nil
			})
		},
	}
}

func newWordsImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "import <comma separated words>",
		Short:   "Ban every word of a comma separated list",
		Example: `  wordmask words import "heck, darn, gosh"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := strings.Join(args, ",")
			return ctx.withSession(cmd, func(c context.Context, sess *session.Session) error {
				added := sess.AddBannedWords(c, list)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d %s (%d banned)\n",
					added, plural(added, "word", "words"), len(sess.BannedWords()))
				return nil
			})
		},
	}
}

func newWordsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <word>...",
		Aliases: []string{"rm"},
		Short:   "Unban one or more words",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(c context.Context, sess *session.Session) error {
				out := cmd.OutOrStdout()
				for _, word := range args {
					if sess.RemoveBannedWord(c, word) {
						fmt.Fprintf(out, "Removed %s\n", mask.NormalizeWord(strings.TrimSpace(word)))
					} else {
						fmt.Fprintf(out, "%s is not banned\n", word)
					}
				}
				return nil
			})
		},
	}
}
