package interpreter

import (
	"testing"
	"time"

	"minwon-analytics/internal/analysis"
)

var kst = time.FixedZone("KST", 9*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, kst)
}

func TestDateRange(t *testing.T) {
	now := time.Date(2026, 10, 18, 15, 30, 0, 0, kst)

	tests := []struct {
		name     string
		query    string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "Year only",
			query:    "2023년 교통 민원 추이",
			wantFrom: date(2023, 1, 1),
			wantTo:   date(2023, 12, 31),
		},
		{
			name:     "Year and month",
			query:    "2023년 6월 불법주차 민원",
			wantFrom: date(2023, 6, 1),
			wantTo:   date(2023, 6, 30),
		},
		{
			name:     "Leap February",
			query:    "2024년 2월 민원",
			wantFrom: date(2024, 2, 1),
			wantTo:   date(2024, 2, 29),
		},
		{
			name:     "Common February",
			query:    "2023년 2월 민원",
			wantFrom: date(2023, 2, 1),
			wantTo:   date(2023, 2, 28),
		},
		{
			name:     "December",
			query:    "2022 12월",
			wantFrom: date(2022, 12, 1),
			wantTo:   date(2022, 12, 31),
		},
		{
			name:     "No year falls back to previous year",
			query:    "불법주차 민원 분석해줘",
			wantFrom: date(2025, 1, 1),
			wantTo:   date(2025, 12, 31),
		},
		{
			name:     "Month without year is ignored",
			query:    "3월 소음 민원",
			wantFrom: date(2025, 1, 1),
			wantTo:   date(2025, 12, 31),
		},
		{
			name:     "Out of range month keeps whole year",
			query:    "2024년 13월 민원",
			wantFrom: date(2024, 1, 1),
			wantTo:   date(2024, 12, 31),
		},
		{
			name:     "First mention wins",
			query:    "2022년 3월과 2023년 5월 비교",
			wantFrom: date(2022, 3, 1),
			wantTo:   date(2022, 3, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := DateRange(tt.query, now)
			if !from.Equal(tt.wantFrom) {
				t.Errorf("DateRange() from = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("DateRange() to = %v, want %v", to, tt.wantTo)
			}
			if from.After(to) {
				t.Errorf("DateRange() from %v after to %v", from, to)
			}
		})
	}
}

func TestSearchKeyword(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "Dates and stop words removed", query: "2023년 6월 불법주차 민원 추이 분석해줘", want: "불법주차 민원"},
		{name: "Punctuation removed", query: "교통, 민원? 현황!", want: "교통 민원"},
		{name: "Year without suffix", query: "2024 층간소음", want: "층간소음"},
		{name: "Stop word in the middle", query: "주차 관련 민원", want: "주차 민원"},
		{name: "Only stop words falls back to query", query: "  최근 통계  ", want: "최근 통계"},
		{name: "Only a command falls back", query: "분석해줘", want: "분석해줘"},
		{name: "Only a date falls back", query: "2023년", want: "2023년"},
		{name: "Empty", query: "", want: ""},
		{name: "Vertical tab separates", query: "교통\v민원", want: "교통 민원"},
		{name: "Next line separates", query: "교통\u0085민원", want: "교통 민원"},
		{name: "Information separators split", query: "불법\x1c주차\x1f민원", want: "불법 주차 민원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchKeyword(tt.query); got != tt.want {
				t.Errorf("SearchKeyword(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestInterpretFlags(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, kst)

	tests := []struct {
		name            string
		query           string
		wantChannels    bool
		wantInstitution bool
		wantKeywords    bool
	}{
		{name: "Minimal", query: "2023년 민원 추이"},
		{name: "Channel comparison", query: "2023년 채널별 민원 비교", wantChannels: true},
		{name: "Channel name", query: "국민신문고 민원", wantChannels: true},
		{name: "Institution", query: "지역별 교통 민원", wantInstitution: true},
		{name: "Related keywords", query: "주차 민원 연관어", wantKeywords: true},
		{
			name:            "All flags",
			query:           "채널 기관별 연관키워드 민원",
			wantChannels:    true,
			wantInstitution: true,
			wantKeywords:    true,
		},
		{name: "Substring does not trigger", query: "채널별로 지역에서 연관성", wantChannels: false},
		{name: "Punctuation attached does not trigger", query: "채널, 민원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.query, now)
			if got.AllChannels != tt.wantChannels {
				t.Errorf("AllChannels = %v, want %v", got.AllChannels, tt.wantChannels)
			}
			if got.UseInstitutionBreakdown != tt.wantInstitution {
				t.Errorf("UseInstitutionBreakdown = %v, want %v", got.UseInstitutionBreakdown, tt.wantInstitution)
			}
			if got.UseRelatedKeywords != tt.wantKeywords {
				t.Errorf("UseRelatedKeywords = %v, want %v", got.UseRelatedKeywords, tt.wantKeywords)
			}
			if got.TargetChannel != analysis.DefaultChannel {
				t.Errorf("TargetChannel = %q, want %q", got.TargetChannel, analysis.DefaultChannel)
			}
		})
	}
}

func TestInterpretIsDeterministic(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, kst)
	query := "2024년 2월 채널별 불법주차 민원 연관어 분석해줘"

	first := Interpret(query, now)
	for i := 0; i < 5; i++ {
		if got := Interpret(query, now); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}

	want := analysis.Intent{
		SearchKeyword:      "채널별 불법주차 민원 연관어",
		DateFrom:           date(2024, 2, 1),
		DateTo:             date(2024, 2, 29),
		TargetChannel:      analysis.ChannelPetition,
		AllChannels:        true,
		UseRelatedKeywords: true,
	}
	if first != want {
		t.Errorf("Interpret() = %+v, want %+v", first, want)
	}
}
