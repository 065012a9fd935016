// Package cli provides the interactive FreshKeep command-line client.
//
// It wires configuration, the encrypted local credential store, the
// authenticated API client, and an interactive REPL. Typical flow: restore
// the stored session if one exists, then execute user commands against the
// backend.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - List inventory, show expiring items, add, consume, and waste items
//   - Waste statistics, recipe suggestions, shopping list, notifications
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
