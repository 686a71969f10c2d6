package chat

import (
	"fmt"
	"strings"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// messageFor renders the bot's next prompt for the record's state. Output is
// markdown; the CLI runs it through glamour, other transports may strip it.
func (b *Bot) messageFor(rec *domain.ConversationRecord) string {
	switch rec.State {
	case domain.StateIdle:
		return "Session reset. Send a voice note or type your idea to begin."

	case domain.StateAudioReceived:
		return "Got your audio, transcribing..."

	case domain.StateTranscribed:
		return fmt.Sprintf("**Transcript**\n\n%s", rec.Transcript)

	case domain.StateMediated:
		return fmt.Sprintf("**Here is your idea, cleaned up:**\n\n%s\n\nReply *ok* to draft a script, *editar* to rewrite it, or *cancelar*.", rec.MediatedText)

	case domain.StateEditingMediated:
		return "Send the corrected text."

	case domain.StateScriptDrafted:
		return fmt.Sprintf("**Script draft**\n\n%s\n\nReply *ok* to lock it, *editar* to adjust, or *cancelar*.", formatScript(rec.FinalScript))

	case domain.StateEditingScript:
		return "Send the edited script, one beat per line. Optional: `[role]` prefix and `(3.5s)` duration suffix."

	case domain.StateFinalScript:
		return "Script locked. Send *siguiente* to pick a template."

	case domain.StateTemplateProposed:
		if rec.Validation != nil && !rec.Validation.OK {
			return fmt.Sprintf("**The script does not fit that template:**\n\n%s\n\nPick another template with *plantilla <id>*, or *cancelar* and rework the script.",
				bulletList(rec.Validation.FatalErrors))
		}
		return "Pick a template with *plantilla <id>*."

	case domain.StateSelectSoundtrack:
		msg := "Template accepted."
		if rec.Validation != nil && len(rec.Validation.Warnings) > 0 {
			msg += fmt.Sprintf("\n\n**Heads up:**\n\n%s", bulletList(rec.Validation.Warnings))
		}
		return msg + "\n\nChoose a soundtrack with *musica <id>*."

	case domain.StateAssetOptions:
		if rec.Validation != nil && !rec.Validation.OK {
			return fmt.Sprintf("**The render plan has problems:**\n\n%s\n\nAdjust your assets and send *generar* again.",
				bulletList(rec.Validation.FatalErrors))
		}
		return "Soundtrack set. Send *generar* to compile the render plan (or configure visuals first)."

	case domain.StateRenderPlanGenerated:
		msg := fmt.Sprintf("**Render plan ready** — %d scenes, %.1fs total.",
			len(rec.RenderPlan.Scenes), rec.RenderPlan.TotalDuration)
		if rec.Validation != nil && len(rec.Validation.Warnings) > 0 {
			msg += fmt.Sprintf("\n\n**Warnings:**\n\n%s", bulletList(rec.Validation.Warnings))
		}
		return msg + "\n\nSend *aprobar* to queue the render."

	case domain.StateReadyForRender:
		return "Approved. Your video is queued for rendering."
	}

	return "..."
}

func formatScript(s *domain.Script) string {
	if s == nil {
		return "(empty)"
	}
	var b strings.Builder
	for _, beat := range s.Beats {
		fmt.Fprintf(&b, "[%s] %s (%.1fs)\n", beat.Role, beat.Text, beat.DurationSeconds)
	}
	fmt.Fprintf(&b, "\nTotal: %.1fs", s.TotalDuration())
	return b.String()
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
