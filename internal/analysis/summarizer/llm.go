// Package summarizer adapts the LLM provider manager to analysis.Summarizer.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/pkg/llmprovider"
)

// Generator is the part of llmprovider.Manager the summarizer needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options are the sampling settings sent with every request.
type Options struct {
	Temperature float64
	MaxTokens   int
}

type llmSummarizer struct {
	gen  Generator
	opts Options
}

// New returns a Summarizer backed by gen.
func New(gen Generator, opts Options) analysis.Summarizer {
	return &llmSummarizer{gen: gen, opts: opts}
}

func (s *llmSummarizer) Summarize(ctx context.Context, messages []analysis.Message) (string, error) {
	req := &llmprovider.Request{
		Messages:    make([]llmprovider.Message, len(messages)),
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	}
	for i, m := range messages {
		req.Messages[i] = llmprovider.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := s.gen.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("summarizer: empty response")
	}
	return strings.TrimSpace(resp.Text), nil
}
