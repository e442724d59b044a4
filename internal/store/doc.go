// Package store persists the banned-word list and the character mapping.
//
// Two layers live here. KV is a minimal string key-value backend with four
// implementations: memory (tests, --ephemeral), file (a JSON object guarded
// by an flock lock file), sqlite (the default, modernc.org/sqlite through
// sqlx) and mysql (go-sql-driver/mysql through sqlx). Adapter sits on top and
// owns the two fixed keys and their encoding: a JSON array of lowercase words
// and the raw mapping string.
//
// Reads are fail-soft. A missing key is the normal "no data yet" state and an
// unreadable or undecodable value degrades to the empty default with a
// warning. Writes return errors and leave the decision to the caller.
package store
