package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
	"github.com/arqv/inkpad/pkg/notemd"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as Markdown files with frontmatter",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := inkpad.Init(dataDir(), storeOptions()...)
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		if err := os.MkdirAll(exportDir, 0755); err != nil {
			fatal("Failed to create export directory", err)
		}

		count := 0
		for _, note := range repo.Notes() {
			data, err := notemd.Encode(*note)
			if err != nil {
				fatal(fmt.Sprintf("Failed to encode note %s", note.ID), err)
			}
			target := filepath.Join(exportDir, notemd.Filename(*note))
			if err := os.WriteFile(target, []byte(data), 0644); err != nil {
				fatal(fmt.Sprintf("Failed to write %s", target), err)
			}
			count++
		}

		fmt.Printf("Exported %d notes to %s.\n", count, exportDir)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", "./notes-export", "Target directory")
}
