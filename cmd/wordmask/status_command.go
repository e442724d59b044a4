package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordmask/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, store and saved state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			report := &statusReport{colorize: shouldColorize(out)}

			if ctx.configExists {
				report.add("Config", statusOK, "%s", ctx.configPath)
			} else {
				report.add("Config", statusInfo, "Defaults (no file at %s)", ctx.configPath)
			}
			report.add("Backend", statusInfo, "%s (%s)", cfg.Store.Backend, store.Location(cfg.Store))

			runCtx := cmd.Context()
			if runCtx == nil {
				runCtx = context.Background()
			}
			sess, closeFn, err := ctx.openSession(runCtx)
			if err != nil {
				report.add("Store", statusError, "%v", err)
				fmt.Fprintln(out, report)
				return nil
			}
			defer closeFn()
			report.add("Store", statusOK, "Reachable")

			words := len(sess.BannedWords())
			if words == 0 {
				report.add("Banned words", statusWarn, "0 words")
			} else {
				report.add("Banned words", statusOK, "%d %s", words, plural(words, "word", "words"))
			}

			spec := sess.MappingSpec()
			switch letters := countLetters(sess.Mapping()); {
			case strings.TrimSpace(spec) == "":
				report.add("Mapping", statusWarn, "Not set")
			case letters == 0:
				report.add("Mapping", statusWarn, "%q has no valid pairs", spec)
			default:
				report.add("Mapping", statusOK, "%s (%d %s)", spec, letters, plural(letters, "letter", "letters"))
			}

			fmt.Fprintln(out, report)
			return nil
		},
	}
}
