package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

const (
	dateLayout = "20060102"
	// timeSuffix lifts a yyyyMMdd date to the yyyyMMddHHmmss form the
	// time-series source expects.
	timeSuffix = "000000"
)

// fetch is one planned source call.
type fetch struct {
	name string
	run  func(ctx context.Context) ([]analysis.EvidenceItem, error)
}

// Aggregate runs every source selected by intent concurrently and merges the
// results in launch order. Any failed source fails the whole call; siblings
// are not canceled and no partial list is returned.
func (uc *implUseCase) Aggregate(ctx context.Context, intent analysis.Intent) ([]analysis.EvidenceItem, error) {
	fetches := uc.plan(intent)
	results := make([][]analysis.EvidenceItem, len(fetches))

	var g errgroup.Group
	for i, f := range fetches {
		g.Go(func() error {
			items, err := f.run(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", f.name, err)
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Aggregate: %v", err)
		return nil, fmt.Errorf("%w: %w", analysis.ErrAggregation, err)
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]analysis.EvidenceItem, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}

	uc.l.Debugf(ctx, "analysis.usecase.Aggregate: %d sources, %d items", len(fetches), len(merged))
	return merged, nil
}

// plan lists the source calls for intent in merge order: channel counts,
// then time series, then institutions, then related keywords.
func (uc *implUseCase) plan(intent analysis.Intent) []fetch {
	from := intent.DateFrom.Format(dateLayout)
	to := intent.DateTo.Format(dateLayout)
	target := intent.TargetChannel
	if target == "" {
		target = analysis.DefaultChannel
	}

	channels := []analysis.Channel{target}
	if intent.AllChannels {
		channels = analysis.AllChannels
	}

	fetches := make([]fetch, 0, len(channels)+3)
	for _, ch := range channels {
		opt := repository.DocCountOptions{
			SearchWord: intent.SearchKeyword,
			DateFrom:   from,
			DateTo:     to,
			Target:     ch,
		}
		fetches = append(fetches, fetch{
			name: "doc_count(" + string(ch) + ")",
			run: func(ctx context.Context) ([]analysis.EvidenceItem, error) {
				return uc.repo.DocCount(ctx, opt)
			},
		})
	}

	tsOpt := repository.TimeSeriesOptions{
		SearchWord: intent.SearchKeyword,
		DateFrom:   from + timeSuffix,
		DateTo:     to + timeSuffix,
		Target:     target,
	}
	fetches = append(fetches, fetch{
		name: "time_series",
		run: func(ctx context.Context) ([]analysis.EvidenceItem, error) {
			return uc.repo.TimeSeries(ctx, tsOpt)
		},
	})

	if intent.UseInstitutionBreakdown {
		opt := repository.InstitutionOptions{
			SearchWord: intent.SearchKeyword,
			DateFrom:   from,
			DateTo:     to,
			Target:     target,
		}
		fetches = append(fetches, fetch{
			name: "institution",
			run: func(ctx context.Context) ([]analysis.EvidenceItem, error) {
				return uc.repo.Institution(ctx, opt)
			},
		})
	}

	if intent.UseRelatedKeywords {
		opt := repository.RelatedKeywordsOptions{
			SearchWord: intent.SearchKeyword,
			DateFrom:   from,
			DateTo:     to,
			Target:     target,
		}
		fetches = append(fetches, fetch{
			name: "related_keywords",
			run: func(ctx context.Context) ([]analysis.EvidenceItem, error) {
				return uc.repo.RelatedKeywords(ctx, opt)
			},
		})
	}

	return fetches
}
