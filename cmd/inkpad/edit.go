package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
	"github.com/arqv/inkpad/pkg/core"
)

var (
	editTitle   string
	editContent string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's title or content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if editTitle == "" && editContent == "" {
			fmt.Println("Error: nothing to change, pass --title and/or --content")
			cmd.Usage()
			os.Exit(1)
		}

		session, err := inkpad.New(dataDir(), storeOptions()...)
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		session.Select(args[0])
		if session.Active() == nil {
			fmt.Printf("Error: note not found: %s\n", args[0])
			os.Exit(1)
		}

		if editTitle != "" {
			if err := session.Edit(core.FieldTitle, editTitle); err != nil {
				fatal("Failed to edit note", err)
			}
		}
		if editContent != "" {
			if err := session.Edit(core.FieldContent, editContent); err != nil {
				fatal("Failed to edit note", err)
			}
		}

		// One-shot process: skip the debounce window and persist now.
		if err := session.Save(context.Background()); err != nil {
			fatal("Failed to persist note", err)
		}

		fmt.Printf("Note %s saved.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
}
