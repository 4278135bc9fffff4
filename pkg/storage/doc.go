// Package storage provides pluggable persistence backends for naming
// sessions.
//
// FileStore writes the canonical interchange format: a directory with
// one JSON file per token and rule plus a naming.conf. SQLiteStore
// keeps the same JSON documents in a single database file, which is
// more convenient for tools that want one artifact per show.
package storage
