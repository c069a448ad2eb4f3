package publicapi

import (
	"context"
	"net/url"
	"strconv"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

func (r *implRepository) RelatedKeywords(ctx context.Context, opt repository.RelatedKeywordsOptions) ([]analysis.EvidenceItem, error) {
	resultCount := opt.ResultCount
	if resultCount <= 0 {
		resultCount = defaultResultCount
	}

	params := url.Values{}
	params.Set("searchword", opt.SearchWord)
	params.Set("resultCount", strconv.Itoa(resultCount))
	params.Set("target", targetOrDefault(opt.Target))
	params.Set("dateFrom", opt.DateFrom)
	params.Set("dateTo", opt.DateTo)
	setOptional(params, "omitDuplicate", opt.OmitDuplicate)

	body, err := r.client.Get(ctx, pathRelatedKeywords, params)
	if err != nil {
		r.l.Errorf(ctx, "publicapi.RelatedKeywords: %v", err)
		return nil, err
	}

	return relatedKeywordsMap.toEvidence(r.records(ctx, SourceRelatedKeywords, body))
}
