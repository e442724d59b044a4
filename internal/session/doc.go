// Package session holds the state of one wordmask run: the input text, the
// banned word list, the mapping spec and the last transform output.
//
// Mutators persist through a Persistence implementation (normally
// *store.Adapter) and notify subscribers after every change. Persistence
// failures are logged and never roll back in-memory state. A Session is owned
// by a single goroutine.
package session
