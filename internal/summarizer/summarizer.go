package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an expert at analyzing video content. Based on the transcript below, write a DETAILED summary in ENGLISH.

Requirements:
- Start with a one-sentence overview of what the video is about
- List ALL the main points in the order they appear
- Explain each point, including any important caveats, tips or warnings
- Keep technical terms as they are spoken
- Use markdown formatting: headings, bullet points, bold for key terms
- End with a "Key takeaways" section

Video title: %s

Transcript:
---
%s
---`

const answerPrompt = `You are answering questions about a video using ONLY its transcript. If the transcript does not contain the answer, say so instead of guessing. Be concise and direct.

Transcript:
---
%s
---

Question: %s`

// Summarize produces a markdown summary of the transcript.
func (s *implSummarizer) Summarize(ctx context.Context, title, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, title, transcript)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Answer responds to a question grounded in the transcript.
func (s *implSummarizer) Answer(ctx context.Context, question, transcript string) (string, error) {
	prompt := fmt.Sprintf(answerPrompt, transcript, question)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key, slot := s.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey(slot)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", slot+1)
				s.rotateKey(slot)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			if text.Len() > 0 {
				return text.String(), nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (s *implSummarizer) activeKey() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

// rotateKey advances past the given slot. Concurrent callers that already
// saw the same exhausted key rotate only once.
func (s *implSummarizer) rotateKey(from int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == from {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
}
