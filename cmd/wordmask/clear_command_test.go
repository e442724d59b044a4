package main

import "testing"

func TestClearCommandConfirms(t *testing.T) {
	env := setupCLITestEnv(t)
	mustRun(t, env, "words", "import", "heck,darn")
	mustRun(t, env, "mapping", "set", "e:3")

	out, err := env.run(t, "n\n", "clear")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	requireContains(t, out, "Aborted")
	requireContains(t, mustRun(t, env, "words", "list"), "heck")

	out, err = env.run(t, "yes\n", "clear")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	requireContains(t, out, "Cleared 2 banned words and the mapping")

	requireContains(t, mustRun(t, env, "words", "list"), "No banned words")
	requireContains(t, mustRun(t, env, "mapping", "show"), "No mapping set")
}

func TestClearCommandYesFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	mustRun(t, env, "words", "add", "heck")

	out := mustRun(t, env, "clear", "--yes")
	requireContains(t, out, "Cleared 1 banned word and the mapping")
}
