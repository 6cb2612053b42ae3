package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summaryPrompt = `You summarize meeting transcripts. Summarize the transcript excerpt below in plain English prose.

Requirements:
- Between %d and %d words
- Complete sentences ending with a period, no headings, no bullet points, no markdown
- Keep names, decisions and action items; drop greetings and small talk

Transcript excerpt:
---
%s
---`

var errCreateClient = errors.New("create client")

// generator sends one prompt with one API key.
type generator interface {
	Generate(ctx context.Context, apiKey, model, prompt string) (string, error)
}

type genaiGenerator struct{}

func (genaiGenerator) Generate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errCreateClient, err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// Summarize sends one chunk to Gemini. Rotates API keys on 429 / quota errors.
func (s *implGemini) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, minLength, maxLength, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := s.key()

		out, err := s.client.Generate(ctx, key, s.model, prompt)
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(err, errCreateClient) || isRateLimited(err) {
			s.logger.Warn(ctx, "Key %d unusable (%v), rotating...", idx+1, err)
			s.rotateKey(idx)
			lastErr = err
			continue
		}
		return "", err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGemini) key() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

// rotateKey advances past the key at idx unless another call already did.
func (s *implGemini) rotateKey(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == idx {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
