package publicapi

import (
	"context"
	"net/url"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

// DocCount fetches complaint counts. A single row may carry several
// channel sub-counts keyed by channel code; each one present becomes its
// own item, in channel-definition order.
func (r *implRepository) DocCount(ctx context.Context, opt repository.DocCountOptions) ([]analysis.EvidenceItem, error) {
	params := url.Values{}
	params.Set("target", targetOrDefault(opt.Target))
	params.Set("dateFrom", opt.DateFrom)
	params.Set("dateTo", opt.DateTo)
	setOptional(params, "searchword", opt.SearchWord)
	setOptional(params, "searchOption", opt.SearchOption)
	setOptional(params, "omitDuplicate", opt.OmitDuplicate)

	body, err := r.client.Get(ctx, pathDocCount, params)
	if err != nil {
		r.l.Errorf(ctx, "publicapi.DocCount: target=%s: %v", params.Get("target"), err)
		return nil, err
	}

	return docCountEvidence(r.records(ctx, SourceDocCount, body))
}

func docCountEvidence(records []Record) ([]analysis.EvidenceItem, error) {
	items := make([]analysis.EvidenceItem, 0, len(records))
	for _, rec := range records {
		for _, ch := range analysis.AllChannels {
			raw, ok := rec[string(ch)]
			if !ok || raw == nil {
				continue
			}
			count, err := toCount(raw)
			if err != nil {
				return nil, &FieldError{Source: SourceDocCount, Field: string(ch), Reason: err.Error()}
			}
			items = append(items, analysis.EvidenceItem{Label: ch.Label(), Count: count})
		}
	}
	return items, nil
}
