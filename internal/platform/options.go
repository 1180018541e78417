package platform

import (
	"log/slog"
	"net/http"

	"github.com/notewire/notewire/pkg/core"
)

// options holds the internal configuration for the notewire client.
type options struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	store       core.SessionStore
	directory   core.Directory
	notes       core.Notes
	confirm     core.ConfirmFunc
	pageSize    int
	eventBuffer int
	sessionPath string
	configPath  string
}

// Option defines a functional option for configuring the client.
type Option func(*options)

// defaultOptions returns the default configuration. BaseURL and pageSize
// stay zero here; the factory resolves them through config file, env and
// built-in defaults, in that order of increasing weakness.
func defaultOptions() *options {
	return &options{}
}

// WithBaseURL sets the gateway base URL, overriding config file and env.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithHTTPClient overrides the HTTP transport (useful for timeouts and tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSessionStore allows injecting a custom session store (e.g. in-memory for tests).
// If provided, the default file-backed store is skipped.
func WithSessionStore(store core.SessionStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSessionPath overrides where the file-backed session store persists.
// Ignored when WithSessionStore is used.
func WithSessionPath(path string) Option {
	return func(o *options) {
		o.sessionPath = path
	}
}

// WithConfigFile overrides the YAML config file location.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithDirectory allows injecting a custom directory gateway.
// If provided (together with WithNotes), no REST client is built.
func WithDirectory(dir core.Directory) Option {
	return func(o *options) {
		o.directory = dir
	}
}

// WithNotes allows injecting a custom notes gateway.
func WithNotes(notes core.Notes) Option {
	return func(o *options) {
		o.notes = notes
	}
}

// WithConfirm installs the deletion confirmation capability.
func WithConfirm(confirm core.ConfirmFunc) Option {
	return func(o *options) {
		o.confirm = confirm
	}
}

// WithPageSize sets the notes listing page size. Zero means default (100).
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// WithEventBuffer allows specifying the size of the collection event buffer.
// Zero means default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
