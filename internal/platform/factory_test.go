package platform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqv/inkpad/pkg/core"
)

type stubRemote struct {
	notes []core.Note
	fail  bool
}

func (r *stubRemote) List(ctx context.Context) ([]core.Note, error) {
	if r.fail {
		return nil, &core.RemoteError{Status: 503, Body: "down"}
	}
	return r.notes, nil
}

func (r *stubRemote) Create(ctx context.Context, n core.Note) (core.Note, error) {
	n.ID = "srv-1"
	return n, nil
}

func (r *stubRemote) Update(ctx context.Context, n core.Note) error { return nil }
func (r *stubRemote) Delete(ctx context.Context, id string) error   { return nil }

type stubLocal struct {
	mu    sync.Mutex
	notes []core.Note
}

func (l *stubLocal) ListAll(ctx context.Context) ([]core.Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Note(nil), l.notes...), nil
}

func (l *stubLocal) Upsert(ctx context.Context, n core.Note) ([]core.Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.notes {
		if l.notes[i].ID == n.ID {
			l.notes[i] = n
			return append([]core.Note(nil), l.notes...), nil
		}
	}
	l.notes = append(l.notes, n)
	return append([]core.Note(nil), l.notes...), nil
}

func (l *stubLocal) Remove(ctx context.Context, id string) ([]core.Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.notes[:0]
	for _, n := range l.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	l.notes = kept
	return append([]core.Note(nil), l.notes...), nil
}

func TestInit(t *testing.T) {
	t.Run("Local Only Without Credential", func(t *testing.T) {
		repo, err := Init(t.TempDir())
		require.NoError(t, err)
		assert.False(t, repo.RemoteEnabled())
		assert.Empty(t, repo.Notes())
	})

	t.Run("Remote Mode With Injected Backend", func(t *testing.T) {
		remote := &stubRemote{notes: []core.Note{{ID: "srv-1", Title: "week1"}}}
		repo, err := Init(t.TempDir(), WithRemote(remote), WithLocalStore(&stubLocal{}))
		require.NoError(t, err)
		assert.True(t, repo.RemoteEnabled())
		require.Len(t, repo.Notes(), 1)
		assert.Equal(t, "week1", repo.Notes()[0].Title)
	})

	t.Run("Startup Remote Failure Falls Back To Local", func(t *testing.T) {
		local := &stubLocal{notes: []core.Note{{ID: "1699", Title: "offline"}}}
		repo, err := Init(t.TempDir(), WithRemote(&stubRemote{fail: true}), WithLocalStore(local))
		require.NoError(t, err)
		assert.False(t, repo.RemoteEnabled())
		require.Len(t, repo.Notes(), 1)
		assert.Equal(t, "offline", repo.Notes()[0].Title)
	})
}

func TestNew(t *testing.T) {
	session, err := New(t.TempDir(),
		WithLocalStore(&stubLocal{}),
		WithAutosaveDelay(50*time.Millisecond))
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Create(context.Background(), "scratch", "")
	require.NoError(t, err)
	require.NoError(t, session.Save(context.Background()))

	notes := session.Repo().Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "scratch", notes[0].Title)
}

func TestInitPropagatesLoadError(t *testing.T) {
	_, err := Init(t.TempDir(), WithLocalStore(failingLocal{}))
	require.Error(t, err)
}

type failingLocal struct{}

func (failingLocal) ListAll(context.Context) ([]core.Note, error) {
	return nil, errors.New("disk gone")
}

func (failingLocal) Upsert(context.Context, core.Note) ([]core.Note, error) {
	return nil, errors.New("disk gone")
}

func (failingLocal) Remove(context.Context, string) ([]core.Note, error) {
	return nil, errors.New("disk gone")
}
