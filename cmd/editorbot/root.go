package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macizomedia/editorBot/internal/cli"
	"github.com/macizomedia/editorBot/internal/config"
)

// Version is stamped at build time via -ldflags.
var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "editorbot",
	Short: "editorbot turns a spoken idea into a video render plan",
	Long: `editorbot guides a conversation from a voice note or typed idea through
script drafting, template compliance and asset selection, and compiles the
result into a validated render plan for the render engine.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "editorbot.yaml", "Path to the configuration file")
}

// loadConfig reads the configuration selected by the persistent flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildStack assembles the application stack for a command, exiting on error.
func buildStack(cmd *cobra.Command) *cli.Stack {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	stack, err := cli.Build(cfg)
	if err != nil {
		fmt.Printf("Error building application stack: %v\n", err)
		os.Exit(1)
	}
	return stack
}
