// Package interpreter turns a free-text complaint-statistics question into
// an analysis.Intent using fixed regex and keyword rules. It does no I/O.
package interpreter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"minwon-analytics/internal/analysis"
)

var (
	yearPattern        = regexp.MustCompile(`(20\d{2})`)
	monthPattern       = regexp.MustCompile(`(\d{1,2})월`)
	yearTokenPattern   = regexp.MustCompile(`20\d{2}년?`)
	monthTokenPattern  = regexp.MustCompile(`\d{1,2}월`)
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}\v\x{1c}-\x{1f}\x{85}]`)
)

// flagRule sets one intent flag when any whitespace token of the query is a
// trigger word. Rules are evaluated independently of each other.
type flagRule struct {
	triggers map[string]struct{}
	set      func(*analysis.Intent)
}

var flagRules = []flagRule{
	{triggers: channelTriggers, set: func(in *analysis.Intent) { in.AllChannels = true }},
	{triggers: institutionTriggers, set: func(in *analysis.Intent) { in.UseInstitutionBreakdown = true }},
	{triggers: keywordTriggers, set: func(in *analysis.Intent) { in.UseRelatedKeywords = true }},
}

// Interpret parses query relative to now. It never fails: anything it cannot
// read falls back to defaults. Only the first year and month mentions are used.
func Interpret(query string, now time.Time) analysis.Intent {
	from, to := DateRange(query, now)

	intent := analysis.Intent{
		SearchKeyword: SearchKeyword(query),
		DateFrom:      from,
		DateTo:        to,
		TargetChannel: analysis.DefaultChannel,
	}

	tokens := tokenSet(query)
	for _, rule := range flagRules {
		if intersects(tokens, rule.triggers) {
			rule.set(&intent)
		}
	}

	return intent
}

// DateRange returns the inclusive calendar range the query refers to, in
// now's location:
//   - year and month: the whole month
//   - year only: the whole year
//   - no year: the whole previous calendar year
//
// A month outside 1..12 is ignored.
func DateRange(query string, now time.Time) (time.Time, time.Time) {
	loc := now.Location()

	ym := yearPattern.FindStringSubmatch(query)
	if ym == nil {
		prev := now.Year() - 1
		return time.Date(prev, time.January, 1, 0, 0, 0, 0, loc),
			time.Date(prev, time.December, 31, 0, 0, 0, 0, loc)
	}
	year, _ := strconv.Atoi(ym[1])

	if mm := monthPattern.FindStringSubmatch(query); mm != nil {
		if month, _ := strconv.Atoi(mm[1]); month >= 1 && month <= 12 {
			first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
			// day 0 of the next month is the last day of this one
			last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, loc)
			return first, last
		}
	}

	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
}

// SearchKeyword strips dates, punctuation and stop words from query. When
// nothing is left it returns the trimmed query itself.
func SearchKeyword(query string) string {
	text := yearTokenPattern.ReplaceAllString(query, "")
	text = monthTokenPattern.ReplaceAllString(text, "")
	text = punctuationPattern.ReplaceAllString(text, "")

	var kept []string
	for _, tok := range fields(text) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}

	if keyword := strings.Join(kept, " "); keyword != "" {
		return keyword
	}
	return strings.TrimSpace(query)
}

// fields splits s on Unicode white space and the ASCII information
// separators U+001C..U+001F.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	})
}

func tokenSet(query string) map[string]struct{} {
	toks := fields(query)
	set := make(map[string]struct{}, len(toks))
	for _, f := range toks {
		set[f] = struct{}{}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
