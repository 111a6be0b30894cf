// Package cli provides the interactive Aroma command-line client.
//
// It wires configuration, the key-value store, the client services and an
// interactive REPL. On start it seeds the default credentials, makes sure a
// cart exists, restores the previous session, records a visit and logs the
// visit summary. The menu is loaded and the promo rotated in the background
// while the REPL runs.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
