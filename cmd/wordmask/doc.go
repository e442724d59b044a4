// Package main hosts the wordmask CLI entrypoint and command graph.
//
// Each invocation resolves configuration, opens the configured key-value
// store and loads a session from it. Subcommands then mutate the session
// (banned words, character mapping) or run the transform and print the
// result. The shell subcommand keeps one session open for an interactive
// loop and prints results from a session subscriber.
//
// Transformation rules live in internal/mask and state handling in
// internal/session; commands here only parse arguments and render output.
package main
