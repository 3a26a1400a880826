package inkpad

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/arqv/inkpad/internal/platform"
	"github.com/arqv/inkpad/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Event is a public alias for store events.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithCredential sets the bearer credential for the remote backend.
// An empty credential starts the session in local-only mode.
func WithCredential(token string) Option {
	return platform.WithCredential(token)
}

// WithServerURL sets the base URL of the notes API.
func WithServerURL(url string) Option {
	return platform.WithServerURL(url)
}

// WithHTTPClient overrides the HTTP client used by the remote backend.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithRemote injects a custom remote backend.
func WithRemote(remote core.RemoteBackend) Option {
	return platform.WithRemote(remote)
}

// WithLocalStore injects a custom local store.
func WithLocalStore(local core.LocalStore) Option {
	return platform.WithLocalStore(local)
}

// WithLogger sets the logger for the store and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAutosaveDelay overrides the editor's debounce window.
func WithAutosaveDelay(d time.Duration) Option {
	return platform.WithAutosaveDelay(d)
}

// WithEventBuffer allows specifying the size of the event broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithForceTemp forces the data directory into a temporary sandbox.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox mechanism.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates a fully wired editor session over a repository rooted at the
// given data directory.
func New(dataDir string, opts ...Option) (*core.Session, error) {
	return platform.New(dataDir, opts...)
}

// Init wires and loads a repository without an editor session.
func Init(dataDir string, opts ...Option) (*core.Repository, error) {
	return platform.Init(dataDir, opts...)
}

// --- Search ---

// Filter returns the notes matching the term, case-insensitively.
func Filter(term string, notes []*core.Note) []*core.Note {
	return core.Filter(term, notes)
}

// --- Safety & Utils ---

// ResolveDataDir determines the actual data directory based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
