package analysis

import "time"

// --- Channels ---

// Channel is a complaint-intake system whose document counts can be queried.
type Channel string

const (
	ChannelPetition Channel = "pttn"
	ChannelSinmungo Channel = "dfpt"
	ChannelSaeol    Channel = "saeol"
	ChannelPortal   Channel = "prpl"

	DefaultChannel = ChannelPetition
)

// AllChannels is the channel-definition order. Fan-outs and merges follow it.
var AllChannels = []Channel{ChannelPetition, ChannelSinmungo, ChannelSaeol, ChannelPortal}

var channelLabels = map[Channel]string{
	ChannelPetition: "청원",
	ChannelSinmungo: "국민신문고",
	ChannelSaeol:    "새올행정",
	ChannelPortal:   "공공포털",
}

// Label returns the human-readable channel name.
func (c Channel) Label() string {
	if l, ok := channelLabels[c]; ok {
		return l
	}
	return string(c)
}

// IsValid reports whether c is one of AllChannels.
func (c Channel) IsValid() bool {
	_, ok := channelLabels[c]
	return ok
}

// --- Intent ---

// Intent is the structured form of a free-text analytic question.
// DateFrom and DateTo are calendar dates (midnight) and DateFrom <= DateTo.
type Intent struct {
	SearchKeyword           string
	DateFrom                time.Time
	DateTo                  time.Time
	TargetChannel           Channel
	AllChannels             bool
	UseInstitutionBreakdown bool
	UseRelatedKeywords      bool
}

// --- Evidence ---

// Keys used in EvidenceItem.Extra.
const (
	ExtraChangeRatio = "changeRatio"
	ExtraTermQuery   = "termQuery"
	ExtraRank        = "rank"
	ExtraRatio       = "ratio"
)

// EvidenceItem is one normalized statistic. Label depends on the producing
// source: a period, a channel, a keyword, an institution or a statute title.
type EvidenceItem struct {
	Label string         `json:"label" yaml:"label"`
	Count int64          `json:"count" yaml:"count"`
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Query string
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Summary    string
	Limitation string
	Statistics []EvidenceItem
	Intent     Intent
}

// --- Summarizer ---

// Message is one chat turn handed to the summarizer.
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)
