package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"minwon-analytics/internal/analysis"
)

func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrEmptyQuery
	}
	if utf8.RuneCountInString(input.Query) > uc.settings.MaxQueryLength {
		return analysis.AnalyzeOutput{}, analysis.ErrQueryTooLong
	}

	intent := uc.Interpret(input.Query)
	uc.l.Infof(ctx, "analysis.usecase.Analyze: keyword=%q range=%s..%s all_channels=%t institution=%t keywords=%t",
		intent.SearchKeyword,
		intent.DateFrom.Format(dateLayout), intent.DateTo.Format(dateLayout),
		intent.AllChannels, intent.UseInstitutionBreakdown, intent.UseRelatedKeywords)

	stats, err := uc.Aggregate(ctx, intent)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	if uc.summarizer == nil {
		return analysis.AnalyzeOutput{}, fmt.Errorf("%w: no summarizer configured", analysis.ErrSummarization)
	}

	raw, err := uc.summarizer.Summarize(ctx, BuildMessages(input.Query, stats))
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: summarizer failed: %v", err)
		return analysis.AnalyzeOutput{}, fmt.Errorf("%w: %w", analysis.ErrSummarization, err)
	}

	summary, limitation := ParseSummary(raw)
	if summary == "" {
		summary = defaultSummary
	}
	if limitation == "" {
		limitation = defaultLimitation
	}

	return analysis.AnalyzeOutput{
		Summary:    summary,
		Limitation: limitation,
		Statistics: stats,
		Intent:     intent,
	}, nil
}
