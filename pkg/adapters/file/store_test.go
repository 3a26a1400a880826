package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqv/inkpad/pkg/adapters/file"
	"github.com/arqv/inkpad/pkg/core"
)

// setupStore helps create a store over a fresh slot for testing.
func setupStore(t *testing.T) (*file.Store, string) {
	t.Helper()
	slot := filepath.Join(t.TempDir(), file.SlotName)
	return file.NewStore(file.Config{Path: slot}), slot
}

func TestListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Slot Is Empty", func(t *testing.T) {
		store, _ := setupStore(t)
		notes, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Malformed Slot Is Empty Not An Error", func(t *testing.T) {
		store, slot := setupStore(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(slot), 0755))
		require.NoError(t, os.WriteFile(slot, []byte("{not json"), 0644))

		notes, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Roundtrips The Collection", func(t *testing.T) {
		store, _ := setupStore(t)
		_, err := store.Upsert(ctx, core.Note{ID: "1", Title: "a", Content: "body"})
		require.NoError(t, err)
		_, err = store.Upsert(ctx, core.Note{ID: "2", Title: "b"})
		require.NoError(t, err)

		notes, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "a", notes[0].Title)
		assert.Equal(t, "body", notes[0].Content)
	})
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces By ID", func(t *testing.T) {
		store, _ := setupStore(t)
		_, err := store.Upsert(ctx, core.Note{ID: "1", Title: "before"})
		require.NoError(t, err)

		coll, err := store.Upsert(ctx, core.Note{ID: "1", Title: "after"})
		require.NoError(t, err)
		require.Len(t, coll, 1, "upsert must not duplicate the record")
		assert.Equal(t, "after", coll[0].Title)
	})

	t.Run("Appends When Absent", func(t *testing.T) {
		store, _ := setupStore(t)
		coll, err := store.Upsert(ctx, core.Note{ID: "1"})
		require.NoError(t, err)
		assert.Len(t, coll, 1)

		coll, err = store.Upsert(ctx, core.Note{ID: "2"})
		require.NoError(t, err)
		assert.Len(t, coll, 2)
	})

	t.Run("Heals A Corrupt Slot", func(t *testing.T) {
		store, slot := setupStore(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(slot), 0755))
		require.NoError(t, os.WriteFile(slot, []byte("garbage"), 0644))

		coll, err := store.Upsert(ctx, core.Note{ID: "1", Title: "fresh"})
		require.NoError(t, err)
		require.Len(t, coll, 1)

		// The slot is valid JSON again.
		data, err := os.ReadFile(slot)
		require.NoError(t, err)
		var parsed []core.Note
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Len(t, parsed, 1)
	})

	t.Run("Leaves No Temp Files Behind", func(t *testing.T) {
		store, slot := setupStore(t)
		_, err := store.Upsert(ctx, core.Note{ID: "1"})
		require.NoError(t, err)

		entries, err := os.ReadDir(filepath.Dir(slot))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, file.SlotName, entries[0].Name())
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters Out And Rewrites", func(t *testing.T) {
		store, _ := setupStore(t)
		_, err := store.Upsert(ctx, core.Note{ID: "1"})
		require.NoError(t, err)
		_, err = store.Upsert(ctx, core.Note{ID: "2"})
		require.NoError(t, err)

		coll, err := store.Remove(ctx, "1")
		require.NoError(t, err)
		require.Len(t, coll, 1)
		assert.Equal(t, "2", coll[0].ID)
	})

	t.Run("Absent ID Is A NoOp", func(t *testing.T) {
		store, _ := setupStore(t)
		_, err := store.Upsert(ctx, core.Note{ID: "1"})
		require.NoError(t, err)

		coll, err := store.Remove(ctx, "nope")
		require.NoError(t, err)
		assert.Len(t, coll, 1)
	})
}

func TestStoreState(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	state := store.State().(file.StoreState)
	assert.False(t, state.SlotExists)
	assert.Equal(t, 0, state.NoteCount)

	_, err := store.Upsert(ctx, core.Note{ID: "1"})
	require.NoError(t, err)

	state = store.State().(file.StoreState)
	assert.True(t, state.SlotExists)
	assert.Equal(t, 1, state.NoteCount)
	assert.Equal(t, "local-store", store.ComponentType())
}
