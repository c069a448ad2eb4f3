package usecase

import (
	"time"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
	pkgLog "minwon-analytics/pkg/log"
)

const defaultMaxQueryLength = 500

// Settings are the static knobs of the analysis use case.
type Settings struct {
	// Location is the timezone "now" is read in. Defaults to UTC.
	Location *time.Location
	// MaxQueryLength is the query limit in runes. Defaults to 500.
	MaxQueryLength int
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.StatisticsRepository
	summarizer analysis.Summarizer
	clock      analysis.Clock
	settings   Settings
}

// New creates a new analysis UseCase instance. A nil clock reads the wall
// clock.
func New(
	l pkgLog.Logger,
	repo repository.StatisticsRepository,
	summarizer analysis.Summarizer,
	clock analysis.Clock,
	settings Settings,
) analysis.UseCase {
	if clock == nil {
		clock = time.Now
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.MaxQueryLength <= 0 {
		settings.MaxQueryLength = defaultMaxQueryLength
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		summarizer: summarizer,
		clock:      clock,
		settings:   settings,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.clock().In(uc.settings.Location)
}
