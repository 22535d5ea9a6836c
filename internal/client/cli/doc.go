// Package cli is the interactive solarplan shell: a line-oriented REPL
// for logging in, managing projects and sizing installations.
//
// Budget estimates are computed locally and kept in a session history
// (newest first, capped); "save" stores the latest one on the server.
// Everything else is a thin layer over client.Client. Errors show the
// server's message when there is one and are never retried.
package cli
