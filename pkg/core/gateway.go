package core

import "context"

// Directory defines the contract against the remote user directory.
// Adhering to this interface keeps the core independent of the transport
// (HTTP today, anything else tomorrow). The directory only exposes a bulk
// listing for lookup, so email resolution is a client-side scan.
type Directory interface {
	// ListIdentities returns every registered identity.
	ListIdentities(ctx context.Context) ([]Identity, error)

	// GetIdentity fetches a single identity by ID.
	// Returns an error wrapping ErrNotFound if the directory no longer knows it.
	GetIdentity(ctx context.Context, id string) (Identity, error)

	// CreateIdentity registers a new identity and returns it with the assigned ID.
	CreateIdentity(ctx context.Context, p Profile) (Identity, error)
}

// Notes defines the contract against the remote notes store.
// Every call is scoped to an owner; the adapter translates that into
// whatever the transport needs (an X-User-Id header for the REST stack).
type Notes interface {
	// ListNotes returns one page of the owner's notes.
	ListNotes(ctx context.Context, ownerID string, page, size int) ([]Note, error)

	// CreateNote persists a new note and returns it with server-assigned
	// ID and timestamps.
	CreateNote(ctx context.Context, ownerID string, draft Draft) (Note, error)

	// UpdateNote sends the full merged record and returns the stored result.
	UpdateNote(ctx context.Context, ownerID string, n Note) (Note, error)

	// DeleteNote removes a note by ID.
	DeleteNote(ctx context.Context, ownerID, id string) error
}

// SessionStore persists the current identity token across process restarts.
// It does not validate freshness; the resolver decides downstream whether
// the token still maps to a live identity.
type SessionStore interface {
	// Save persists the identity token.
	Save(identityID string) error

	// Load retrieves the persisted token. ok is false when no session exists.
	Load() (identityID string, ok bool, err error)

	// Clear removes the persisted token. Clearing an absent session is not an error.
	Clear() error
}

// ConfirmFunc approves a destructive operation before it is sent to the
// remote. The collection never performs the confirmation itself; a CLI
// injects a prompt, tests inject a constant.
type ConfirmFunc func(ctx context.Context, n Note) (bool, error)
