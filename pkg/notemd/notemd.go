// Package notemd encodes notes as Markdown files with YAML frontmatter,
// the interchange format for exporting a collection to (and importing it
// back from) a plain-file vault.
package notemd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arqv/inkpad/pkg/core"
)

// frontmatter is the YAML header carried above the note body.
type frontmatter struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	UserID string `yaml:"user_id,omitempty"`
}

// Parse reads a stream and decodes it into a Note.
// A document without a frontmatter block is all content; the caller is
// expected to assign an ID afterwards.
func Parse(r io.Reader) (core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Note{}, err
	}

	var n core.Note

	// Standard: frontmatter must start at the very beginning with ---
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		n.Content = string(data)
		return n, nil
	}

	rest := data[3:] // Skip first ---
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return core.Note{}, errors.New("frontmatter started but no closing delimiter found")
	}

	var fm frontmatter
	if err := yaml.Unmarshal(parts[0], &fm); err != nil {
		return core.Note{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	n.ID = fm.ID
	n.Title = fm.Title
	n.UserID = fm.UserID

	content := strings.TrimPrefix(string(parts[1]), "\n")
	content = strings.TrimPrefix(content, "\r\n")
	n.Content = content

	return n, nil
}

// Encode serializes the note to Markdown with a frontmatter header.
func Encode(n core.Note) (string, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontmatter{ID: n.ID, Title: n.Title, UserID: n.UserID}); err != nil {
		return "", err
	}
	encoder.Close()
	buf.WriteString("---\n")

	buf.WriteString(n.Content)
	return buf.String(), nil
}

// Filename derives a stable export filename from the note ID.
func Filename(n core.Note) string {
	return n.ID + ".md"
}
