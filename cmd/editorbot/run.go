package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macizomedia/editorBot/internal/chat"
	"github.com/macizomedia/editorBot/internal/cli"
	"github.com/macizomedia/editorBot/internal/tui"
)

// runCmd is the interactive chat simulator: the full conversation loop over
// the in-process stack, with bot replies rendered as markdown.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive chat session",
	Long: `Starts an interactive conversation in the terminal. Type your idea (or
simulate a voice note with /voice <ref>), then follow the bot's prompts
through script drafting, template choice and render plan approval.`,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, _ := cmd.Flags().GetString("session")

		stack := buildStack(cmd)
		defer stack.Close()

		render := tui.NewRenderer()
		tui.PrintBanner(Version)
		fmt.Println("Type your idea, /voice <ref> to simulate a voice note, or /quit to leave.")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if input == "/quit" || input == "/exit" {
				break
			}

			reply, err := handleInput(cmd.Context(), stack, sessionID, input)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println(render(reply.Text))
		}

		if err := scanner.Err(); err != nil {
			fmt.Printf("Input error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Bye.")
	},
}

// handleInput routes one line of input: /voice simulates an incoming voice
// note, everything else goes through the text path (commands or free text).
func handleInput(ctx context.Context, stack *cli.Stack, sessionID, input string) (*chat.Reply, error) {
	if ref, ok := strings.CutPrefix(input, "/voice"); ok {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			ref = "audio://simulated-note"
		}
		return stack.Bot.HandleVoice(ctx, sessionID, ref)
	}
	return stack.Bot.HandleText(ctx, sessionID, input)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("session", "s", "local", "Session ID for the conversation")
}
