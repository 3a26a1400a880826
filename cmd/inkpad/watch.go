package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad/pkg/adapters/file"
	lcsource "github.com/arqv/inkpad/pkg/adapters/lifecycle"
	"github.com/arqv/inkpad/pkg/core"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow external changes to the local note slot",
	Long: `Watch observes the local slot file and prints a line per changed note
until interrupted. Other processes writing the slot (another inkpad
invocation, a sync job) show up as CREATE/MODIFY/DELETE events.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := file.NewStore(file.Config{
			Path:   filepath.Join(dataDir(), file.SlotName),
			Logger: slog.Default(),
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := store.Watch(ctx, watchPattern)
		if err != nil {
			fmt.Printf("Error starting watch: %v\n", err)
			os.Exit(1)
		}

		// Run the stream through the lifecycle bridge so the forwarding
		// goroutine is tracked and panic-safe.
		src := lcsource.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fmt.Printf("Error starting watch: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Watching %s (pattern %q). Ctrl-C to stop.\n", store.Path(), watchPattern)
		for e := range src.Events() {
			evt := e.(core.Event)
			fmt.Printf("%s  %-7s %s\n",
				time.Unix(evt.Timestamp, 0).Format(time.TimeOnly), evt.Type, evt.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "**", "Glob pattern of note IDs to report")
}
