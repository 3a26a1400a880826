package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
	"github.com/arqv/inkpad/pkg/core"
	"github.com/arqv/inkpad/pkg/notemd"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import Markdown files with frontmatter into the store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := inkpad.New(dataDir(), storeOptions()...)
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		entries, err := os.ReadDir(args[0])
		if err != nil {
			fatal("Failed to read import directory", err)
		}

		ctx := context.Background()
		count := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
				continue
			}

			f, err := os.Open(filepath.Join(args[0], entry.Name()))
			if err != nil {
				fatal(fmt.Sprintf("Failed to open %s", entry.Name()), err)
			}
			parsed, err := notemd.Parse(f)
			f.Close()
			if err != nil {
				fatal(fmt.Sprintf("Failed to parse %s", entry.Name()), err)
			}

			title := parsed.Title
			if title == "" {
				title = strings.TrimSuffix(entry.Name(), ".md")
			}

			if _, err := session.Create(ctx, title, parsed.Content); err != nil {
				fatal(fmt.Sprintf("Failed to import %s", entry.Name()), err)
			}
			if err := session.Save(ctx); err != nil && err != core.ErrNoActiveNote {
				fatal(fmt.Sprintf("Failed to persist %s", entry.Name()), err)
			}
			count++
		}

		fmt.Printf("Imported %d notes.\n", count)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
