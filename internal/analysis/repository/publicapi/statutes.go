package publicapi

import (
	"context"
	"net/url"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

func (r *implRepository) Statutes(ctx context.Context, opt repository.StatutesOptions) ([]analysis.EvidenceItem, error) {
	params := url.Values{}
	params.Set("target", targetOrDefault(opt.Target))
	params.Set("searchword", opt.SearchWord)
	params.Set("dateFrom", opt.DateFrom)
	params.Set("dateTo", opt.DateTo)
	setOptional(params, "searchOption", opt.SearchOption)
	setOptional(params, "omitDuplicate", opt.OmitDuplicate)

	body, err := r.client.Get(ctx, pathStatutes, params)
	if err != nil {
		r.l.Errorf(ctx, "publicapi.Statutes: %v", err)
		return nil, err
	}

	return statutesMap.toEvidence(r.records(ctx, SourceStatutes, body))
}
