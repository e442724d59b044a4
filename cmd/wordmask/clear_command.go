package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordmask/internal/session"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored banned words and mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !assumeYes {
				fmt.Fprint(out, "Delete all banned words and the mapping? [y/N] ")
				if !confirmed(cmd) {
					fmt.Fprintln(out, "Aborted")
					return nil
				}
			}
			return ctx.withSession(cmd, func(c context.Context, sess *session.Session) error {
				words := len(sess.BannedWords())
				sess.ClearAllData(c)
				fmt.Fprintf(out, "Cleared %d banned %s and the mapping\n", words, plural(words, "word", "words"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func confirmed(cmd *cobra.Command) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
