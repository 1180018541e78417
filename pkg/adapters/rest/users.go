package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/notewire/notewire/pkg/core"
)

const usersPath = "/userservice/api/users"

// ListIdentities returns every identity in the directory. The directory
// exposes no server-side filter, so callers scan the full listing.
func (c *Client) ListIdentities(ctx context.Context) ([]core.Identity, error) {
	var identities []core.Identity
	if err := c.do(ctx, http.MethodGet, usersPath, nil, nil, &identities); err != nil {
		return nil, err
	}
	return identities, nil
}

// GetIdentity fetches one identity by ID. A 404 wraps core.ErrNotFound so
// the resolver can distinguish "token is dead" from transport trouble.
func (c *Client) GetIdentity(ctx context.Context, id string) (core.Identity, error) {
	var ident core.Identity
	err := c.do(ctx, http.MethodGet, usersPath+"/"+url.PathEscape(id), nil, nil, &ident)
	if err != nil {
		if core.IsStatus(err, http.StatusNotFound) {
			return core.Identity{}, fmt.Errorf("identity %s: %w", id, core.ErrNotFound)
		}
		return core.Identity{}, err
	}
	return ident, nil
}

// CreateIdentity registers a new profile; the directory assigns the ID.
func (c *Client) CreateIdentity(ctx context.Context, p core.Profile) (core.Identity, error) {
	var created core.Identity
	if err := c.do(ctx, http.MethodPost, usersPath, nil, p, &created); err != nil {
		return core.Identity{}, err
	}
	return created, nil
}

// UpdateIdentity replaces an identity's profile. Not driven by the session
// flows; exposed for completeness of the directory contract.
func (c *Client) UpdateIdentity(ctx context.Context, id string, p core.Profile) (core.Identity, error) {
	var updated core.Identity
	err := c.do(ctx, http.MethodPut, usersPath+"/"+url.PathEscape(id), nil, p, &updated)
	if err != nil {
		if core.IsStatus(err, http.StatusNotFound) {
			return core.Identity{}, fmt.Errorf("identity %s: %w", id, core.ErrNotFound)
		}
		return core.Identity{}, err
	}
	return updated, nil
}

// DeleteIdentity removes an identity from the directory. The session layer
// never calls this; logout is purely client-side.
func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, usersPath+"/"+url.PathEscape(id), nil, nil, nil)
}
