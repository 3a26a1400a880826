package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
	"github.com/arqv/inkpad/pkg/core"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search notes by title or content",
	Long:  `Search returns the notes whose title or content contains the term, case-insensitively, most recent first.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := inkpad.Init(dataDir(), storeOptions()...)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		results := core.Filter(args[0], repo.Notes())

		if searchJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if len(results) == 0 {
			fmt.Println("No notes matched.")
			return
		}
		for _, note := range results {
			fmt.Printf("%s - %s\n", note.ID, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
