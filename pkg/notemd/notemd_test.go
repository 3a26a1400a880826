package notemd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqv/inkpad/pkg/core"
	"github.com/arqv/inkpad/pkg/notemd"
)

func TestParse(t *testing.T) {
	t.Run("With Frontmatter", func(t *testing.T) {
		doc := "---\nid: \"1699\"\ntitle: week1\nuser_id: user-1\n---\nbig o basics\n"
		n, err := notemd.Parse(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "1699", n.ID)
		assert.Equal(t, "week1", n.Title)
		assert.Equal(t, "user-1", n.UserID)
		assert.Equal(t, "big o basics\n", n.Content)
	})

	t.Run("Without Frontmatter Is All Content", func(t *testing.T) {
		n, err := notemd.Parse(strings.NewReader("just markdown\n"))
		require.NoError(t, err)
		assert.Empty(t, n.ID)
		assert.Empty(t, n.Title)
		assert.Equal(t, "just markdown\n", n.Content)
	})

	t.Run("Unterminated Frontmatter Fails", func(t *testing.T) {
		_, err := notemd.Parse(strings.NewReader("---\ntitle: broken\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no closing delimiter")
	})

	t.Run("Invalid YAML Fails", func(t *testing.T) {
		_, err := notemd.Parse(strings.NewReader("---\ntitle: [\n---\nbody"))
		require.Error(t, err)
	})
}

func TestEncodeRoundtrip(t *testing.T) {
	original := core.Note{ID: "srv-7", Title: "mvp-pitch", UserID: "user-1", Content: "# Pitch\n\nremember the demo\n"}

	doc, err := notemd.Encode(original)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "---\n"))

	parsed, err := notemd.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, original.ID, parsed.ID)
	assert.Equal(t, original.Title, parsed.Title)
	assert.Equal(t, original.UserID, parsed.UserID)
	assert.Equal(t, original.Content, parsed.Content)
}

func TestEncodeOmitsEmptyUserID(t *testing.T) {
	doc, err := notemd.Encode(core.Note{ID: "1", Title: "t"})
	require.NoError(t, err)
	assert.NotContains(t, doc, "user_id")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "srv-7.md", notemd.Filename(core.Note{ID: "srv-7"}))
}
