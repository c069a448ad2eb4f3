package publicapi

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"minwon-analytics/internal/analysis"
)

// extraField copies an optional upstream field into EvidenceItem.Extra.
type extraField struct {
	from string
	to   string
}

// fieldMap describes how one source's rows map onto EvidenceItem.
type fieldMap struct {
	source string
	label  string
	count  string
	extras []extraField
}

var (
	timeSeriesMap = fieldMap{
		source: SourceTimeSeries,
		label:  "label",
		count:  "hits",
		extras: []extraField{
			{from: "prebRatio", to: analysis.ExtraChangeRatio},
			{from: "termQuery", to: analysis.ExtraTermQuery},
		},
	}
	institutionMap = fieldMap{
		source: SourceInstitution,
		label:  "label",
		count:  "hits",
		extras: []extraField{{from: "rank", to: analysis.ExtraRank}},
	}
	relatedKeywordsMap = fieldMap{
		source: SourceRelatedKeywords,
		label:  "label",
		count:  "value",
	}
	statutesMap = fieldMap{
		source: SourceStatutes,
		label:  "label",
		count:  "hits",
		extras: []extraField{
			{from: "rank", to: analysis.ExtraRank},
			{from: "ratio", to: analysis.ExtraRatio},
		},
	}
)

// toEvidence maps normalized rows onto evidence items. Rows with a blank
// label are skipped; a missing label or count fails the whole batch.
func (m fieldMap) toEvidence(records []Record) ([]analysis.EvidenceItem, error) {
	items := make([]analysis.EvidenceItem, 0, len(records))
	for _, rec := range records {
		rawLabel, ok := rec[m.label]
		if !ok || rawLabel == nil {
			return nil, &FieldError{Source: m.source, Field: m.label, Reason: "is missing"}
		}
		label := strings.TrimSpace(scalarString(rawLabel))
		if label == "" {
			continue
		}

		rawCount, ok := rec[m.count]
		if !ok || rawCount == nil {
			return nil, &FieldError{Source: m.source, Field: m.count, Reason: "is missing"}
		}
		count, err := toCount(rawCount)
		if err != nil {
			return nil, &FieldError{Source: m.source, Field: m.count, Reason: err.Error()}
		}

		item := analysis.EvidenceItem{Label: label, Count: count}
		for _, ef := range m.extras {
			v, ok := rec[ef.from]
			if !ok || v == nil {
				continue
			}
			if item.Extra == nil {
				item.Extra = make(map[string]any, len(m.extras))
			}
			item.Extra[ef.to] = toScalar(v)
		}
		items = append(items, item)
	}
	return items, nil
}

// scalarString renders a decoded JSON scalar as text.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// toCount reads a non-negative integer count. Upstream sends counts as
// numbers or numeric strings.
func toCount(v any) (int64, error) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			if n < 0 {
				return 0, fmt.Errorf("is negative (%d)", n)
			}
			return n, nil
		}
		parsed, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("is not numeric (%q)", t.String())
		}
		f = parsed
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			if n < 0 {
				return 0, fmt.Errorf("is negative (%d)", n)
			}
			return n, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("is not numeric (%q)", t)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("has unsupported type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("is not finite")
	}
	if f < 0 {
		return 0, fmt.Errorf("is negative (%v)", f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if f >= math.MaxInt64 {
		return 0, fmt.Errorf("is out of range (%v)", f)
	}
	return int64(f), nil
}

// toScalar converts json.Number into int64 or float64 and passes other
// values through.
func toScalar(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
