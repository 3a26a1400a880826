package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arqv/inkpad/pkg/core"
)

func TestFilter(t *testing.T) {
	notes := []*core.Note{
		{ID: "1", Title: "Week1 Notes", Content: "lecture recap"},
		{ID: "2", Title: "Other", Content: "misc"},
		{ID: "3", Title: "todo", Content: "review week1 homework"},
	}

	t.Run("Empty Term Returns Full List Unchanged", func(t *testing.T) {
		got := core.Filter("", notes)
		assert.Equal(t, notes, got)

		got = core.Filter("   ", notes)
		assert.Equal(t, notes, got)
	})

	t.Run("Matches Title Substring", func(t *testing.T) {
		got := core.Filter("week1", notes)
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		lower := core.Filter("week1", notes)
		upper := core.Filter("WEEK1", notes)
		assert.Equal(t, lower, upper)
	})

	t.Run("Matches Content", func(t *testing.T) {
		got := core.Filter("misc", notes)
		assert.Len(t, got, 1)
		assert.Equal(t, "Other", got[0].Title)
	})

	t.Run("Preserves Source Order", func(t *testing.T) {
		got := core.Filter("e", notes) // matches all three
		assert.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
		assert.Equal(t, "3", got[2].ID)
	})

	t.Run("No Match Yields Empty", func(t *testing.T) {
		got := core.Filter("zzz", notes)
		assert.Empty(t, got)
	})
}
