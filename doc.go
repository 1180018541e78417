// Package notewire is the Composition Root for the notewire client.
//
// It connects the core synchronization logic (Domain Layer) with the
// infrastructure adapters (Transport and Persistence Layers) using the
// Hexagonal Architecture pattern.
//
// Philosophy:
//
// Notewire is a headless client for a remote notes stack. It maintains a
// locally cached, ordered view of one identity's notes, keeps that view
// consistent with the remote store through confirmed mutations, and
// restores the user's session across restarts from a persisted token.
// The core is transport-agnostic; the default adapters speak REST to the
// user directory and notes services and persist the session as a JSON file.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from transport details.
//   - **Ordered Cache**: Pinned-first, most-recently-touched ordering with stable ties.
//   - **Scroll Stability**: In-place edits keep their list position; only pin changes re-sort.
//   - **Session Restore**: Persisted token confirmed against the directory on startup.
//   - **Identity Isolation**: Switching identity atomically discards the prior collection;
//     late responses from the old identity are dropped, never applied.
//   - **Extensible**: Custom gateways and session stores via core.Directory,
//     core.Notes and core.SessionStore.
//
// Usage:
//
//	// Assemble a controller with functional options
//	ctrl, err := notewire.New(
//		notewire.WithBaseURL("http://localhost:8080"),
//		notewire.WithLogger(logger),
//	)
//
//	// Restore the session and work with the collection
//	if err := ctrl.Start(ctx); err != nil { ... }
//	coll, err := ctrl.Collection()
package notewire
