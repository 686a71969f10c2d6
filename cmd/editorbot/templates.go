package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available video templates",
	Run: func(cmd *cobra.Command, args []string) {
		stack := buildStack(cmd)
		defer stack.Close()

		summaries, err := stack.Catalog.ListTemplates(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing templates: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tFAMILY\tDURATION")
		for _, t := range summaries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f-%.0fs\n",
				t.ID, t.Name, t.Family, t.Duration.Min, t.Duration.Max)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
