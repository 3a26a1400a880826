package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arqv/inkpad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inkpad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkpad version %s\n", inkpad.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
