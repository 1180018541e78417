package notewire

import (
	"log/slog"
	"net/http"

	"github.com/notewire/notewire/internal/platform"
	"github.com/notewire/notewire/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Identity is a public alias for the domain identity.
type Identity = core.Identity

// Profile is a public alias for the registration payload.
type Profile = core.Profile

// Note is a public alias for the domain note.
type Note = core.Note

// Draft is a public alias for the creation payload.
type Draft = core.Draft

// Patch is a public alias for the partial update.
type Patch = core.Patch

// Controller is a public alias for the session controller.
type Controller = core.Controller

// Collection is a public alias for the note collection cache.
type Collection = core.Collection

// Event is a public alias for collection change events.
type Event = core.Event

// Session states and auth views.
const (
	StateRestoring       = core.StateRestoring
	StateUnauthenticated = core.StateUnauthenticated
	StateActive          = core.StateActive

	ViewLogin    = core.ViewLogin
	ViewRegister = core.ViewRegister
)

// Errors re-exported for callers deciding without importing pkg/core.
var (
	ErrNotFound         = core.ErrNotFound
	ErrEmailTaken       = core.ErrEmailTaken
	ErrNoActiveIdentity = core.ErrNoActiveIdentity
	ErrNotAuthenticated = core.ErrNotAuthenticated
)

// NewDraft returns a draft with the stock defaults for a new note.
func NewDraft() Draft {
	return core.NewDraft()
}

// --- Configuration ---

// Option defines a functional option for configuring the client.
type Option = platform.Option

// WithBaseURL sets the gateway base URL, overriding config file and env.
func WithBaseURL(url string) Option {
	return platform.WithBaseURL(url)
}

// WithHTTPClient overrides the HTTP transport.
func WithHTTPClient(hc *http.Client) Option {
	return platform.WithHTTPClient(hc)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSessionStore allows injecting a custom session store.
func WithSessionStore(store core.SessionStore) Option {
	return platform.WithSessionStore(store)
}

// WithSessionPath overrides where the file-backed session store persists.
func WithSessionPath(path string) Option {
	return platform.WithSessionPath(path)
}

// WithConfigFile overrides the YAML config file location.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithDirectory allows injecting a custom directory gateway.
func WithDirectory(dir core.Directory) Option {
	return platform.WithDirectory(dir)
}

// WithNotes allows injecting a custom notes gateway.
func WithNotes(notes core.Notes) Option {
	return platform.WithNotes(notes)
}

// WithConfirm installs the deletion confirmation capability.
func WithConfirm(confirm core.ConfirmFunc) Option {
	return platform.WithConfirm(confirm)
}

// WithPageSize sets the notes listing page size.
func WithPageSize(size int) Option {
	return platform.WithPageSize(size)
}

// WithEventBuffer allows specifying the size of the collection event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New assembles a session Controller. Call Start on it to restore the
// persisted session.
func New(opts ...Option) (*core.Controller, error) {
	return platform.New(opts...)
}
