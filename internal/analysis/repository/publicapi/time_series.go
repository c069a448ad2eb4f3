package publicapi

import (
	"context"
	"net/url"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

// TimeSeries fetches the keyword trend. Dates are 14-digit timestamps.
func (r *implRepository) TimeSeries(ctx context.Context, opt repository.TimeSeriesOptions) ([]analysis.EvidenceItem, error) {
	period := opt.Period
	if period == "" {
		period = defaultPeriod
	}
	sortBy := opt.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortOrder := opt.SortOrder
	if sortOrder == "" {
		sortOrder = defaultSortOrder
	}

	params := url.Values{}
	params.Set("period", period)
	params.Set("sortBy", sortBy)
	params.Set("sortOrder", sortOrder)
	params.Set("target", targetOrDefault(opt.Target))
	params.Set("dateFrom", opt.DateFrom)
	params.Set("dateTo", opt.DateTo)
	params.Set("searchword", opt.SearchWord)
	setOptional(params, "mainSubCode", opt.MainSubCode)

	body, err := r.client.Get(ctx, pathTimeSeries, params)
	if err != nil {
		r.l.Errorf(ctx, "publicapi.TimeSeries: %v", err)
		return nil, err
	}

	return timeSeriesMap.toEvidence(r.records(ctx, SourceTimeSeries, body))
}
