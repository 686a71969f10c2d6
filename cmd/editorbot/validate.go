package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macizomedia/editorBot/internal/cli"
	"github.com/macizomedia/editorBot/internal/renderplan"
	"github.com/macizomedia/editorBot/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <plan.json>",
	Short: "Check a render plan document for consistency",
	Long:  `Parses a serialized render plan and reports timing gaps, overlaps, overruns and format problems without touching any session.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Render plan is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	plan, err := renderplan.Parse(data)
	if err != nil {
		return err
	}

	result := renderplan.Validate(plan)
	printFindings(result)

	if !result.OK {
		return fmt.Errorf("%d fatal error(s)", len(result.FatalErrors))
	}
	return nil
}

func printFindings(result *domain.ValidationResult) {
	for _, msg := range result.FatalErrors {
		fmt.Println("ERROR   " + msg)
	}
	for _, msg := range result.Warnings {
		fmt.Println("WARNING " + msg)
	}
}

// exportPlan loads a session and serializes its render plan, refusing plans
// that have not passed validation.
func exportPlan(cmd *cobra.Command, stack *cli.Stack, sessionID string) ([]byte, error) {
	rec, err := stack.Sessions.Load(cmd.Context(), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session '%s': %w", sessionID, err)
	}
	if rec.RenderPlan == nil {
		return nil, errors.New("session has no render plan yet")
	}
	return renderplan.Export(rec.RenderPlan)
}
