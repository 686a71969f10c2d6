package memory

import "context"

// Transcriber is a deterministic stand-in for the speech-to-text service:
// it returns a fixed text regardless of the audio reference. Useful for
// offline runs and tests.
type Transcriber struct {
	Text string
}

func (t *Transcriber) Transcribe(ctx context.Context, audioRef string) (string, error) {
	return t.Text, nil
}

// Mediator is a deterministic stand-in for the text mediation service: it
// returns the transcript unchanged.
type Mediator struct{}

func (m *Mediator) Mediate(ctx context.Context, transcript string) (string, error) {
	return transcript, nil
}
