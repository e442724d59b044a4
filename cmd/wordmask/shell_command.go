package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wordmask/internal/session"
)

const shellHelp = `Type text to transform it. Commands:
  :add <word>[, <word>...]   ban words
  :remove <word>             unban a word
  :map <letter:replacement,...>  replace the mapping
  :words                     list banned words
  :mapping                   show the mapping
  :clear                     delete all words and the mapping
  :help                      show this help
  :quit                      leave the shell`

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive transform loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(c context.Context, sess *session.Session) error {
				return runShell(c, sess, cmd.InOrStdin(), cmd.OutOrStdout(), isTerminal(cmd.InOrStdin()))
			})
		},
	}
}

func runShell(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, interactive bool) error {
	cancel := sess.Subscribe(func(snap session.Snapshot) {
		renderShellEvent(out, snap)
	})
	defer cancel()

	if interactive {
		fmt.Fprintln(out, tagline)
		fmt.Fprintln(out, `Type ":help" for commands.`)
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			sess.SetInput(line)
			sess.RunTransform()
			continue
		}
		if quit := runShellCommand(ctx, sess, out, line); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func runShellCommand(ctx context.Context, sess *session.Session, out io.Writer, line string) bool {
	name, rest, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "q", "quit", "exit":
		return true
	case "help", "h", "?":
		fmt.Fprintln(out, shellHelp)
	case "add":
		if sess.AddBannedWords(ctx, rest) == 0 {
			fmt.Fprintln(out, "no new words")
			return false
		}
		rerun(sess)
	case "remove", "rm":
		if rest == "" {
			fmt.Fprintln(out, "usage: :remove <word>")
			return false
		}
		if !sess.RemoveBannedWord(ctx, rest) {
			fmt.Fprintf(out, "%s is not banned\n", rest)
			return false
		}
		rerun(sess)
	case "map":
		sess.SetMapping(ctx, rest)
		rerun(sess)
	case "words":
		words := sess.BannedWords()
		if len(words) == 0 {
			fmt.Fprintln(out, "No banned words")
			return false
		}
		fmt.Fprintln(out, renderWordsTable(words))
	case "mapping":
		pairs := sess.Mapping().Pairs()
		if len(pairs) == 0 {
			fmt.Fprintln(out, "No mapping set")
			return false
		}
		fmt.Fprintln(out, renderPairsTable(pairs))
	case "clear":
		sess.ClearAllData(ctx)
	default:
		fmt.Fprintf(out, "unknown command %q (try :help)\n", ":"+name)
	}
	return false
}

// rerun refreshes the output after words or mapping change, once some input
// has been entered.
func rerun(sess *session.Session) {
	if sess.Input() != "" {
		sess.RunTransform()
	}
}

func renderShellEvent(out io.Writer, snap session.Snapshot) {
	switch snap.Event {
	case session.EventTransform:
		fmt.Fprintln(out, snap.Output)
	case session.EventWords:
		if len(snap.BannedWords) == 0 {
			fmt.Fprintln(out, "banned: (none)")
			return
		}
		fmt.Fprintf(out, "banned: %s\n", strings.Join(snap.BannedWords, ", "))
	case session.EventMapping:
		fmt.Fprintf(out, "mapping: %s\n", snap.MappingSpec)
	case session.EventClear:
		fmt.Fprintln(out, "cleared banned words and mapping")
	}
}
