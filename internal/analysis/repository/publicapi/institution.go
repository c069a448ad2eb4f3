package publicapi

import (
	"context"
	"net/url"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

func (r *implRepository) Institution(ctx context.Context, opt repository.InstitutionOptions) ([]analysis.EvidenceItem, error) {
	mainSubCode := opt.MainSubCode
	if mainSubCode == "" {
		mainSubCode = defaultMainSubCode
	}

	params := url.Values{}
	params.Set("target", targetOrDefault(opt.Target))
	params.Set("searchword", opt.SearchWord)
	params.Set("dateFrom", opt.DateFrom)
	params.Set("dateTo", opt.DateTo)
	params.Set("mainSubCode", mainSubCode)
	setOptional(params, "searchOption", opt.SearchOption)
	setOptional(params, "omitDuplicate", opt.OmitDuplicate)

	body, err := r.client.Get(ctx, pathInstitution, params)
	if err != nil {
		r.l.Errorf(ctx, "publicapi.Institution: %v", err)
		return nil, err
	}

	return institutionMap.toEvidence(r.records(ctx, SourceInstitution, body))
}
