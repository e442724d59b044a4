package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"wordmask/internal/mask"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type transformJSON struct {
	Input       string     `json:"input"`
	Output      string     `json:"output"`
	BannedWords []string   `json:"banned_words"`
	Mapping     string     `json:"mapping"`
	Stats       mask.Stats `json:"stats"`
}

type mappingJSON struct {
	Spec  string      `json:"spec"`
	Pairs []mask.Pair `json:"pairs"`
}
