package summarizer

import "context"

// Summarizer turns transcripts into LLM-generated text.
type Summarizer interface {
	// Summarize produces a structured summary of the transcript.
	Summarize(ctx context.Context, title, transcript string) (string, error)
	// Answer responds to a question using only the transcript.
	Answer(ctx context.Context, question, transcript string) (string, error)
}
