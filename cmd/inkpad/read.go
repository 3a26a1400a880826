package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
)

var readCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := inkpad.Init(dataDir(), storeOptions()...)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		note := repo.Find(args[0])
		if note == nil {
			fmt.Printf("Error: note not found: %s\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("# %s\n\n%s\n", note.Title, note.Content)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
