package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Resolver turns an email into a directory-confirmed identity, or creates
// a new one. The directory service only exposes a bulk listing endpoint,
// so both lookup and uniqueness are full-list scans on the client.
type Resolver struct {
	dir    Directory
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by the given directory gateway.
func NewResolver(dir Directory, logger *slog.Logger) *Resolver {
	return &Resolver{dir: dir, logger: logger}
}

// Login resolves an email to its identity. Matching is case-insensitive
// and first-match wins, preserving the directory's listing order.
func (r *Resolver) Login(ctx context.Context, email string) (Identity, error) {
	identities, err := r.dir.ListIdentities(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to list directory: %w", err)
	}

	for _, ident := range identities {
		if strings.EqualFold(ident.Email, email) {
			return ident, nil
		}
	}

	return Identity{}, fmt.Errorf("no account found with this email address: %w", ErrNotFound)
}

// Register creates a new identity after checking that the email is not
// already taken (case-insensitive, same scan as Login).
func (r *Resolver) Register(ctx context.Context, p Profile) (Identity, error) {
	identities, err := r.dir.ListIdentities(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to list directory: %w", err)
	}

	for _, ident := range identities {
		if strings.EqualFold(ident.Email, p.Email) {
			return Identity{}, ErrEmailTaken
		}
	}

	created, err := r.dir.CreateIdentity(ctx, p)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to create identity: %w", err)
	}

	if r.logger != nil {
		r.logger.Debug("registered identity", "id", created.ID, "email", created.Email)
	}
	return created, nil
}

// Restore fetches an identity by its persisted token. An error wrapping
// ErrNotFound means the remote no longer recognizes the ID (deleted
// out-of-band); the caller must clear the session store.
func (r *Resolver) Restore(ctx context.Context, identityID string) (Identity, error) {
	ident, err := r.dir.GetIdentity(ctx, identityID)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to restore identity %s: %w", identityID, err)
	}
	return ident, nil
}
