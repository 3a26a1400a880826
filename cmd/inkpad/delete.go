package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note from the working set and the active backing store.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := inkpad.New(dataDir(), storeOptions()...)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		session.Select(args[0])
		if session.Active() == nil {
			fmt.Printf("Error: note not found: %s\n", args[0])
			os.Exit(1)
		}

		// Deletion needs confirmation from the calling context.
		if !deleteYes && !confirm(fmt.Sprintf("Delete note %s?", args[0])) {
			fmt.Println("Aborted.")
			return
		}

		if err := session.Delete(context.Background()); err != nil {
			fmt.Printf("Error deleting note: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
