package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
)

var (
	newTitle   string
	newContent string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a note with the given title and content and persist it to the active backing store.`,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := inkpad.New(dataDir(), storeOptions()...)
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		ctx := context.Background()

		note, err := session.Create(ctx, newTitle, newContent)
		if err != nil {
			fatal("Failed to create note", err)
		}

		// Create is optimistic; Save pushes the note to the backing store.
		if err := session.Save(ctx); err != nil {
			fatal("Failed to persist note", err)
		}

		// The repository may have adopted a server-assigned ID.
		fmt.Printf("Note '%s' created (%s).\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Note title (defaults to \"Untitled\")")
	newCmd.Flags().StringVar(&newContent, "content", "", "Note content")
}
