package platform

import (
	"context"
	"path/filepath"

	"github.com/arqv/inkpad/pkg/adapters/file"
	"github.com/arqv/inkpad/pkg/adapters/rest"
	"github.com/arqv/inkpad/pkg/core"
)

// Init wires a repository rooted at the given data directory and performs
// the startup load. Remote mode is enabled only when a credential (or an
// injected remote backend) is present; absence of a credential means the
// session starts, and stays, local-only.
func Init(dataDir string, opts ...Option) (*core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Safety & path resolution: dev runs get sandboxed unless disabled.
	useTemp := o.tempDir || (IsDevRun() && o.devSafety)
	resolvedDir := ResolveDataDir(dataDir, useTemp)

	if o.logger != nil && useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)",
			"original_path", dataDir, "resolved_path", resolvedDir)
	}

	local := o.local
	if local == nil {
		local = file.NewStore(file.Config{
			Path:   filepath.Join(resolvedDir, file.SlotName),
			Logger: o.logger,
		})
	}

	remote := o.remote
	if remote == nil && o.token != "" {
		remote = rest.NewClient(rest.Config{
			BaseURL:    o.serverURL,
			Token:      o.token,
			HTTPClient: o.httpClient,
			Logger:     o.logger,
		})
	}

	repo := core.NewRepository(core.RepositoryConfig{
		Remote:      remote,
		Local:       local,
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	})

	if err := repo.Load(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// New wires a full editor session: repository plus debounced autosave.
func New(dataDir string, opts ...Option) (*core.Session, error) {
	repo, err := Init(dataDir, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewSession(core.SessionConfig{
		Repo:          repo,
		AutosaveDelay: o.autosaveDelay,
		Logger:        o.logger,
	}), nil
}
