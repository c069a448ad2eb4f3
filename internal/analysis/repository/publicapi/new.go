package publicapi

import (
	"context"
	"net/url"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
	pkgLog "minwon-analytics/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a statistics repository backed by the complaint Open API.
func New(client *Client, l pkgLog.Logger) repository.StatisticsRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// setOptional adds key only when value is non-empty.
func setOptional(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func targetOrDefault(ch analysis.Channel) string {
	if ch == "" {
		return string(analysis.DefaultChannel)
	}
	return string(ch)
}

// records classifies body and returns its rows, logging the shape seen.
func (r *implRepository) records(ctx context.Context, source string, body any) []Record {
	b := Classify(body)
	rows := b.Records()
	r.l.Debugf(ctx, "publicapi.%s: shape=%s rows=%d", source, b.Shape, len(rows))
	return rows
}
