package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRun(t, env, "words", "list")
	requireContains(t, out, "No banned words")

	out = mustRun(t, env, "words", "add", "Heck", "heck", "darn")
	requireContains(t, out, "Added heck")
	requireContains(t, out, "heck is already banned")
	requireContains(t, out, "Added darn")

	out = mustRun(t, env, "words", "import", "gosh,", "DARN", ",", "drat")
	requireContains(t, out, "Added 2 words (4 banned)")

	out = mustRun(t, env, "words", "list")
	requireContains(t, out, "heck")
	requireContains(t, out, "drat")

	out = mustRun(t, env, "words", "remove", "DARN", "nope")
	requireContains(t, out, "Removed darn")
	requireContains(t, out, "nope is not banned")

	out = mustRun(t, env, "words", "list", "--json")
	var words []string
	if err := json.Unmarshal([]byte(out), &words); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if diff := cmp.Diff(words, []string{"heck", "gosh", "drat"}); diff != "" {
		t.Fatalf("Diff: (-got +want)\n%s", diff)
	}
}

func TestWordsAddRequiresArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, err := env.run(t, "", "words", "add"); err == nil {
		t.Fatal("expected error without a word")
	}
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRun(t, env, "--ephemeral", "words", "add", "heck")
	requireContains(t, out, "Added heck")

	out = mustRun(t, env, "words", "list")
	requireContains(t, out, "No banned words")
}
