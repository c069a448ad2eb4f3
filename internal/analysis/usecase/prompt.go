package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"minwon-analytics/internal/analysis"
)

const (
	noDataLine = "조회된 데이터 없음"

	defaultSummary    = "분석 결과를 생성하지 못했습니다."
	defaultLimitation = "추가 데이터가 필요합니다."
)

const systemPrompt = `당신은 민원 빅데이터 분석 전문가입니다.
반드시 아래 JSON 형식으로만 응답하세요. 다른 텍스트는 포함하지 마세요.

{
  "summary": "핵심 트렌드 요약 (최대 3줄, 줄바꿈은 \\n으로 구분)",
  "limitation": "데이터 한계점 또는 후속 질문 (1~2문장)"
}

규칙:
- 제공된 통계 수치 외의 수치를 만들지 마세요.
- 제공된 데이터가 없으면 summary에 "조회된 데이터가 부족하여 분석이 어렵습니다."라고 작성하세요.
- summary 작성 순서:
  1줄: 전체 기간의 민원 건수와 대표 추세 (증가/감소/변동)
  2줄: 가장 많은 건수를 기록한 시점과 수치, 전월 대비 증감률이 가장 큰 시점
  3줄: 주목할 만한 패턴 또는 이상치 (급등·급락 구간)
- limitation에는 이 데이터로 알 수 없는 것(원인, 지역별 분포, 채널 비교 등)을 후속 질문으로 제시하세요.
- 항상 한국어로 답하세요.
`

var (
	periodLabelPattern = regexp.MustCompile(`^\d{8}$`)
	jsonBlockPattern   = regexp.MustCompile(`(?s)\{.*\}`)

	countPrinter = message.NewPrinter(language.Korean)
)

// FormatStatistics renders evidence as one line per item, in list order.
func FormatStatistics(items []analysis.EvidenceItem) string {
	if len(items) == 0 {
		return noDataLine
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(formatLabel(item.Label))
		sb.WriteString(": ")
		sb.WriteString(countPrinter.Sprintf("%d", item.Count))
		sb.WriteString("건")
		if ratio, ok := item.Extra[analysis.ExtraChangeRatio]; ok && ratio != nil {
			sb.WriteString(" (전월 대비 ")
			sb.WriteString(formatRatio(ratio))
			sb.WriteString("%)")
		}
	}
	return sb.String()
}

// formatLabel turns a yyyyMMdd period into "yyyy년 MM월".
func formatLabel(label string) string {
	if periodLabelPattern.MatchString(label) {
		return label[:4] + "년 " + label[4:6] + "월"
	}
	return label
}

// formatRatio renders a change ratio with an explicit sign when positive.
// Values that already carry a sign are kept as is.
func formatRatio(v any) string {
	var s string
	switch t := v.(type) {
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		s = strconv.FormatInt(t, 10)
	case int:
		s = strconv.Itoa(t)
	default:
		s = fmt.Sprint(t)
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return "+" + s
	}
	return s
}

// BuildMessages assembles the summarizer prompt for query and its evidence.
func BuildMessages(query string, items []analysis.EvidenceItem) []analysis.Message {
	user := fmt.Sprintf("분석 질의: %s\n\n[조회된 통계 데이터]\n%s\n\n위 데이터를 기반으로 분석 결과를 JSON으로 반환하세요.",
		query, FormatStatistics(items))
	return []analysis.Message{
		{Role: analysis.RoleSystem, Content: systemPrompt},
		{Role: analysis.RoleUser, Content: user},
	}
}

type summaryPayload struct {
	Summary    string `json:"summary"`
	Limitation string `json:"limitation"`
}

// ParseSummary extracts summary and limitation from generated text. The
// first {...} span is decoded as JSON; otherwise the whole trimmed text is
// the summary and the limitation is empty.
func ParseSummary(raw string) (summary, limitation string) {
	if block := jsonBlockPattern.FindString(raw); block != "" {
		var p summaryPayload
		if err := json.Unmarshal([]byte(block), &p); err == nil {
			return p.Summary, p.Limitation
		}
	}
	return strings.TrimSpace(raw), ""
}
