package http

import (
	"minwon-analytics/internal/analysis"
	"minwon-analytics/pkg/response"
)

const defaultMaxQueryLength = 500

// --- Request DTOs ---

type analyzeReq struct {
	Query string `json:"query" binding:"required" example:"2023년 불법 주차 민원 추이 알려줘"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{Query: r.Query}
}

// --- Response DTOs ---

type statisticItem struct {
	Label string         `json:"label"`
	Count int64          `json:"count"`
	Extra map[string]any `json:"extra,omitempty"`
}

func newStatisticItems(items []analysis.EvidenceItem) []statisticItem {
	out := make([]statisticItem, len(items))
	for i, it := range items {
		out[i] = statisticItem{Label: it.Label, Count: it.Count, Extra: it.Extra}
	}
	return out
}

type intentResp struct {
	SearchKeyword           string        `json:"search_keyword"`
	DateFrom                response.Date `json:"date_from" swaggertype:"string" example:"2023-01-01"`
	DateTo                  response.Date `json:"date_to" swaggertype:"string" example:"2023-12-31"`
	TargetChannel           string        `json:"target_channel"`
	AllChannels             bool          `json:"all_channels"`
	UseInstitutionBreakdown bool          `json:"use_institution_breakdown"`
	UseRelatedKeywords      bool          `json:"use_related_keywords"`
}

func newIntentResp(in analysis.Intent) intentResp {
	return intentResp{
		SearchKeyword:           in.SearchKeyword,
		DateFrom:                response.Date(in.DateFrom),
		DateTo:                  response.Date(in.DateTo),
		TargetChannel:           string(in.TargetChannel),
		AllChannels:             in.AllChannels,
		UseInstitutionBreakdown: in.UseInstitutionBreakdown,
		UseRelatedKeywords:      in.UseRelatedKeywords,
	}
}

type analyzeResp struct {
	Summary    string          `json:"summary"`
	Statistics []statisticItem `json:"statistics"`
	Limitation string          `json:"limitation"`
	Intent     intentResp      `json:"intent"`
}

func (h *handler) newAnalyzeResp(out analysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Summary:    out.Summary,
		Statistics: newStatisticItems(out.Statistics),
		Limitation: out.Limitation,
		Intent:     newIntentResp(out.Intent),
	}
}
