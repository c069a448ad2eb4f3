package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

type recordingRepo struct {
	docCount    repository.DocCountOptions
	timeSeries  repository.TimeSeriesOptions
	institution repository.InstitutionOptions
	keywords    repository.RelatedKeywordsOptions
	statutes    repository.StatutesOptions
}

func (r *recordingRepo) DocCount(_ context.Context, opt repository.DocCountOptions) ([]analysis.EvidenceItem, error) {
	r.docCount = opt
	return []analysis.EvidenceItem{{Label: "청원", Count: 1}}, nil
}

func (r *recordingRepo) TimeSeries(_ context.Context, opt repository.TimeSeriesOptions) ([]analysis.EvidenceItem, error) {
	r.timeSeries = opt
	return nil, nil
}

func (r *recordingRepo) Institution(_ context.Context, opt repository.InstitutionOptions) ([]analysis.EvidenceItem, error) {
	r.institution = opt
	return nil, nil
}

func (r *recordingRepo) RelatedKeywords(_ context.Context, opt repository.RelatedKeywordsOptions) ([]analysis.EvidenceItem, error) {
	r.keywords = opt
	return nil, nil
}

func (r *recordingRepo) Statutes(_ context.Context, opt repository.StatutesOptions) ([]analysis.EvidenceItem, error) {
	r.statutes = opt
	return nil, nil
}

func TestNewFetchParams(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		target  string
		wantErr bool
	}{
		{name: "valid", from: "20230101", to: "20231231", target: "pttn"},
		{name: "same day", from: "20230301", to: "20230301", target: "saeol"},
		{name: "bad from", from: "2023-01-01", to: "20231231", target: "pttn", wantErr: true},
		{name: "missing to", from: "20230101", to: "", target: "pttn", wantErr: true},
		{name: "reversed", from: "20231231", to: "20230101", target: "pttn", wantErr: true},
		{name: "unknown target", from: "20230101", to: "20231231", target: "email", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newFetchParams("주차", tt.from, tt.to, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, analysis.Channel(tt.target), p.Target)
			assert.Equal(t, "주차", p.Keyword)
		})
	}
}

func TestFetchSources_Options(t *testing.T) {
	repo := &recordingRepo{}
	p := fetchParams{Keyword: "주차", From: "20230101", To: "20231231", Target: analysis.ChannelSaeol}

	for _, src := range fetchSources {
		_, err := src.run(context.Background(), repo, p)
		require.NoError(t, err, src.use)
	}

	assert.Equal(t, repository.DocCountOptions{
		SearchWord: "주차", DateFrom: "20230101", DateTo: "20231231", Target: analysis.ChannelSaeol,
	}, repo.docCount)
	assert.Equal(t, "20230101000000", repo.timeSeries.DateFrom)
	assert.Equal(t, "20231231000000", repo.timeSeries.DateTo)
	assert.Equal(t, "20230101", repo.institution.DateFrom)
	assert.Equal(t, "주차", repo.keywords.SearchWord)
	assert.Equal(t, analysis.ChannelSaeol, repo.statutes.Target)
}

func TestInterpretCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"interpret", "--timezone", "UTC", "2023년 3월 불법 주차 기관별"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var got intentView
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "2023-03-01", got.DateFrom)
	assert.Equal(t, "2023-03-31", got.DateTo)
	assert.Equal(t, "pttn", got.TargetChannel)
	assert.True(t, got.UseInstitutionBreakdown)
	assert.False(t, got.UseRelatedKeywords)
}

func TestPrintYAML(t *testing.T) {
	var out bytes.Buffer
	items := []analysis.EvidenceItem{{Label: "202301", Count: 12, Extra: map[string]any{"changeRatio": "+3.5"}}}

	require.NoError(t, printYAML(&out, items))
	assert.Contains(t, out.String(), `label: "202301"`)
	assert.Contains(t, out.String(), "count: 12")

	var back []analysis.EvidenceItem
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &back))
	assert.Equal(t, items, back)
}
