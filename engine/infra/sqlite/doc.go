// Package sqlite provides the modernc.org/sqlite backed post store.
//
// It mirrors the postgres driver layout: a Store owning the connection, goose
// migrations embedded in the binary, and a PostRepo over the posts table.
package sqlite
