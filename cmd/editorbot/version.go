package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of editorbot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("editorbot version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
