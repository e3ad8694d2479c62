package niche

import (
	"context"
	"fmt"
	"log"
	"strings"

	"creatorlitebackend/internal/llm"
)

const (
	retentionPrompt = "Suggest 3 effective YouTube video retention strategies for the niche '%s'."
	thumbnailPrompt = "Generate a catchy and effective YouTube thumbnail concept idea for videos about '%s'."

	advisorySystemPrompt = "You are a YouTube growth consultant. Give concise, actionable advice for content creators."
)

// Advisory is the result of one text-generation request. Exactly one of
// Text and FailureReason is populated: a failed generation carries the
// reason instead of propagating an error, so callers always get a
// renderable result.
type Advisory struct {
	Niche         string `json:"niche"`
	Text          string `json:"text,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// Degraded reports whether generation failed.
func (a Advisory) Degraded() bool { return a.FailureReason != "" }

// Render returns the generated text, or a descriptive placeholder when
// generation failed. Never empty.
func (a Advisory) Render() string {
	if a.Degraded() {
		return "Text generation error: " + a.FailureReason
	}
	return a.Text
}

// AdvisoryGenerator produces niche-keyed strategy suggestions through a
// chat-completion client.
type AdvisoryGenerator struct {
	Client      llm.ChatClient
	Model       string
	Temperature float64
	MaxTokens   int
}

// RetentionStrategies asks the model for retention tactics for the niche.
func (g AdvisoryGenerator) RetentionStrategies(ctx context.Context, niche string) Advisory {
	return g.generate(ctx, niche, fmt.Sprintf(retentionPrompt, niche))
}

// ThumbnailConcept asks the model for a thumbnail idea for the niche.
func (g AdvisoryGenerator) ThumbnailConcept(ctx context.Context, niche string) Advisory {
	return g.generate(ctx, niche, fmt.Sprintf(thumbnailPrompt, niche))
}

func (g AdvisoryGenerator) generate(ctx context.Context, niche, prompt string) Advisory {
	if g.Client == nil || g.Model == "" {
		return g.degrade(niche, fmt.Errorf("advisory generator misconfigured"))
	}

	req := llm.ChatCompletionRequest{
		Model: g.Model,
		Messages: []llm.Message{
			{Role: "system", Content: advisorySystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
	}

	resp, err := g.Client.ChatCompletion(ctx, req)
	if err != nil {
		return g.degrade(niche, err)
	}
	if len(resp.Choices) == 0 {
		return g.degrade(niche, fmt.Errorf("response missing choices"))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return g.degrade(niche, fmt.Errorf("response contains no text"))
	}

	return Advisory{Niche: niche, Text: text}
}

func (g AdvisoryGenerator) degrade(niche string, cause error) Advisory {
	log.Printf("advisory for %q degraded: %v", niche, cause)
	return Advisory{Niche: niche, FailureReason: cause.Error()}
}
