package interpreter

// stopWords are dropped from the search keyword: command verbs, generic
// analysis nouns and temporal fillers.
var stopWords = toSet(
	"분석", "분석해줘", "알려줘", "보여줘", "해줘", "줘",
	"어때", "어떻게", "됐어", "추이", "트렌드", "현황", "통계",
	"데이터", "관련", "대한", "최근", "올해", "작년",
)

var (
	channelTriggers     = toSet("채널", "채널별", "비교", "국민신문고", "새올", "공공포털", "채널비교")
	institutionTriggers = toSet("기관", "기관별", "처리기관", "지역", "지역별", "지자체", "시군구")
	keywordTriggers     = toSet("연관어", "연관", "키워드", "관련어", "연관키워드")
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
