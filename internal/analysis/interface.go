package analysis

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze interprets the query, gathers evidence and summarizes it.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	// Interpret returns the intent the query would be analyzed with.
	Interpret(query string) Intent
	// Aggregate gathers the evidence list for intent from every selected source.
	Aggregate(ctx context.Context, intent Intent) ([]EvidenceItem, error)
}

// Summarizer turns a prompt into raw generated text. It is a long-lived
// capability created at startup and closed at shutdown.
type Summarizer interface {
	Summarize(ctx context.Context, messages []Message) (string, error)
}

// Clock returns the current time. The interpreter's fallback date range is
// relative to it.
type Clock func() time.Time
