package repository

import (
	"context"

	"minwon-analytics/internal/analysis"
)

// StatisticsRepository fetches complaint statistics from the public Open API.
// Every method returns evidence in the order the upstream source returned it.
type StatisticsRepository interface {
	// DocCount returns one item per channel sub-count present in the response.
	DocCount(ctx context.Context, opt DocCountOptions) ([]analysis.EvidenceItem, error)
	// TimeSeries returns one item per period.
	TimeSeries(ctx context.Context, opt TimeSeriesOptions) ([]analysis.EvidenceItem, error)
	// Institution returns one item per processing institution.
	Institution(ctx context.Context, opt InstitutionOptions) ([]analysis.EvidenceItem, error)
	// RelatedKeywords returns one item per related keyword.
	RelatedKeywords(ctx context.Context, opt RelatedKeywordsOptions) ([]analysis.EvidenceItem, error)
	// Statutes returns one item per related statute.
	Statutes(ctx context.Context, opt StatutesOptions) ([]analysis.EvidenceItem, error)
}
