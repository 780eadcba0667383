// Package cli provides the interactive authdesk terminal client.
//
// It wires configuration, the local user store, and an interactive REPL
// covering the whole authentication demo: register an account, log in,
// inspect the dashboard, and log out. The session survives restarts, so a
// logged-in user lands straight on the dashboard.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
