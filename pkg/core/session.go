package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// State is the session controller's machine state.
type State string

const (
	// StateRestoring is the startup state while a persisted token is being confirmed.
	StateRestoring State = "restoring"
	// StateUnauthenticated means no identity is active; the auth view decides
	// whether login or register is on screen.
	StateUnauthenticated State = "unauthenticated"
	// StateActive means an identity is bound and a collection exists.
	StateActive State = "active"
)

// AuthView is the sub-view shown while unauthenticated.
type AuthView string

const (
	ViewLogin    AuthView = "login"
	ViewRegister AuthView = "register"
)

// ControllerConfig holds the configuration for a session controller.
// The collection settings are handed down to every collection it creates.
type ControllerConfig struct {
	PageSize    int
	Confirm     ConfirmFunc
	EventBuffer int
	Logger      *slog.Logger
}

// Controller is the top-level state machine: startup restore, login,
// register, identity switch, and logout. It owns the current identity
// explicitly; nothing in this layer is a process-wide singleton. The
// machine has no terminal state, it cycles between unauthenticated and
// active for the process lifetime.
type Controller struct {
	store    SessionStore
	resolver *Resolver
	notes    Notes
	cfg      ControllerConfig
	logger   *slog.Logger

	mu         sync.Mutex
	state      State
	view       AuthView
	identity   Identity
	collection *Collection
}

// NewController wires a controller from its collaborators. Call Start to
// run the session restore.
func NewController(store SessionStore, dir Directory, notes Notes, cfg ControllerConfig) *Controller {
	return &Controller{
		store:    store,
		resolver: NewResolver(dir, cfg.Logger),
		notes:    notes,
		cfg:      cfg,
		logger:   cfg.Logger,
		state:    StateRestoring,
		view:     ViewLogin,
	}
}

// Start restores the persisted session, if any. A missing token goes
// straight to the login view without touching the directory. A token the
// remote no longer recognizes (or a failing restore call) is deliberately
// absorbed: the store is cleared and the machine falls back to the login
// view instead of surfacing the failure. A failing initial collection
// load IS returned; the session stays active and the user retries.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateRestoring
	c.mu.Unlock()

	id, ok, err := c.store.Load()
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("failed to read session store", "error", err)
		}
		_ = c.store.Clear()
	}
	if err != nil || !ok {
		c.toUnauthenticated()
		return nil
	}

	ident, err := c.resolver.Restore(ctx, id)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("session restore failed, clearing token", "id", id, "error", err)
		}
		if clearErr := c.store.Clear(); clearErr != nil && c.logger != nil {
			c.logger.Warn("failed to clear session store", "error", clearErr)
		}
		c.toUnauthenticated()
		return nil
	}

	coll := c.activate(ident)
	if _, err := coll.Load(ctx); err != nil {
		return err
	}
	return nil
}

// Login resolves the email and, on success, persists the token and
// activates a fresh collection for the identity. A failed lookup leaves
// the session state untouched.
func (c *Controller) Login(ctx context.Context, email string) error {
	ident, err := c.resolver.Login(ctx, email)
	if err != nil {
		return err
	}
	return c.establish(ctx, ident)
}

// Register creates a new identity and activates it, same as Login.
func (c *Controller) Register(ctx context.Context, p Profile) error {
	ident, err := c.resolver.Register(ctx, p)
	if err != nil {
		return err
	}
	return c.establish(ctx, ident)
}

// Logout clears the persisted token, discards the identity, collection and
// selection, and returns to the login view.
func (c *Controller) Logout() error {
	c.toUnauthenticated()
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

// SwitchView toggles between the login and register sub-views. Only valid
// while unauthenticated.
func (c *Controller) SwitchView(v AuthView) error {
	if v != ViewLogin && v != ViewRegister {
		return fmt.Errorf("unknown auth view %q", v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateUnauthenticated {
		return fmt.Errorf("cannot switch auth view in state %s", c.state)
	}
	c.view = v
	return nil
}

// State returns the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the current unauthenticated sub-view.
func (c *Controller) View() AuthView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Identity returns the active identity, if any.
func (c *Controller) Identity() (Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity, c.state == StateActive
}

// Collection returns the active identity's collection, or
// ErrNotAuthenticated outside the active state.
func (c *Controller) Collection() (*Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive || c.collection == nil {
		return nil, ErrNotAuthenticated
	}
	return c.collection, nil
}

// establish persists the token and swaps in a fresh collection, then runs
// the initial load. The token write comes first so a crash between the two
// restores into the right account.
func (c *Controller) establish(ctx context.Context, ident Identity) error {
	if err := c.store.Save(ident.ID); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	coll := c.activate(ident)
	if _, err := coll.Load(ctx); err != nil {
		return err
	}
	return nil
}

// activate swaps the active identity. The old collection is invalidated
// before the new one exists, so an in-flight response from the previous
// identity can never be applied to the new cache.
func (c *Controller) activate(ident Identity) *Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.collection != nil {
		c.collection.Invalidate()
	}

	c.identity = ident
	c.collection = NewCollection(c.notes, ident, CollectionConfig{
		PageSize:    c.cfg.PageSize,
		Confirm:     c.cfg.Confirm,
		EventBuffer: c.cfg.EventBuffer,
		Logger:      c.cfg.Logger,
	})
	c.state = StateActive

	if c.logger != nil {
		c.logger.Debug("session active", "id", ident.ID, "email", ident.Email)
	}
	return c.collection
}

// toUnauthenticated tears the session down to the login view.
func (c *Controller) toUnauthenticated() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.collection != nil {
		c.collection.Invalidate()
	}
	c.identity = Identity{}
	c.collection = nil
	c.state = StateUnauthenticated
	c.view = ViewLogin
}
