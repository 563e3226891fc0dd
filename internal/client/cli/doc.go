// Package cli provides the interactive herejpg command-line client.
//
// It wires configuration, the HTTP API client, the map view model and an
// interactive REPL. Typical flow: load the public photo list, prompt for
// credentials, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (cookie session, identity cached per session)
//   - List photo markers with ownership-aware edit indicators
//   - Upload, edit and delete photos
//   - Recenter the map viewport
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
