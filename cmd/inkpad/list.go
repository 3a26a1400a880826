package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
	"github.com/arqv/inkpad/pkg/core"
)

var (
	listJSON   bool
	listFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := inkpad.Init(dataDir(), storeOptions()...)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		// The compact list view goes through the same predicate as search.
		notes := core.Filter(listFilter, repo.Notes())

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for _, note := range notes {
			fmt.Printf("%s - %s\n", note.ID, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter notes by a case-insensitive substring")
}
