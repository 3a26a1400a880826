// Package platform is the composition root: it wires the core note store
// to its adapters (REST remote, file-backed local slot) based on the
// resolved configuration.
package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/arqv/inkpad/pkg/core"
)

// options holds the internal configuration for the note store.
type options struct {
	token         string
	serverURL     string
	httpClient    *http.Client
	remote        core.RemoteBackend
	local         core.LocalStore
	logger        *slog.Logger
	autosaveDelay time.Duration
	eventBuffer   int
	tempDir       bool
	devSafety     bool
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithCredential sets the bearer credential. An empty credential starts the
// session in local-only mode; the core never reads the credential slot
// itself.
func WithCredential(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithServerURL sets the base URL of the notes API.
func WithServerURL(url string) Option {
	return func(o *options) {
		o.serverURL = url
	}
}

// WithHTTPClient overrides the HTTP client used by the remote backend.
// Useful for injecting timeouts or test transports.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithRemote injects a custom remote backend (e.g. a mock). If provided,
// the REST adapter is skipped and the session starts remote-enabled.
func WithRemote(remote core.RemoteBackend) Option {
	return func(o *options) {
		o.remote = remote
	}
}

// WithLocalStore injects a custom local store. If provided, the default
// file adapter is skipped.
func WithLocalStore(local core.LocalStore) Option {
	return func(o *options) {
		o.local = local
	}
}

// WithLogger sets the logger for the store and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAutosaveDelay overrides the debounce window of the editor session.
// Zero keeps the default (700ms).
func WithAutosaveDelay(d time.Duration) Option {
	return func(o *options) {
		o.autosaveDelay = d
	}
}

// WithEventBuffer allows specifying the size of the event broker buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithForceTemp forces the data directory into a temporary sandbox
// (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.tempDir = force
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), the data directory is re-rooted into a temporary
// directory to prevent accidental writes to real data.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
