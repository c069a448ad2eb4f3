package publicapi

import "time"

const (
	// DefaultTimeout bounds every upstream call.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxResponseBytes caps how much of an upstream body is read.
	DefaultMaxResponseBytes = 8 << 20

	// DefaultBaseURL is the data.go.kr root of the complaint analysis APIs.
	DefaultBaseURL = "https://apis.data.go.kr/1140100"

	v5 = "minAnalsInfoView5"
	v8 = "minAnalsInfoView8"

	pathDocCount        = v5 + "/minSearchDocCnt5"
	pathTimeSeries      = v5 + "/minTimeSeriseView5"
	pathRelatedKeywords = v5 + "/minWdcloudInfo5"
	pathInstitution     = v8 + "/minPrcsInstInfo"
	pathStatutes        = v8 + "/minActsSubordinateStatutesInfo"

	defaultPeriod        = "MONTHLY"
	defaultSortBy        = "NAME"
	defaultSortOrder     = "true"
	defaultMainSubCode   = "0"
	defaultResultCount   = 20
	defaultResultCodeStr = "0"
	defaultResultMessage = "Unknown error"
)

// successCodes are the header.resultCode values the upstream uses for "OK".
var successCodes = map[string]struct{}{
	"0":   {},
	"00":  {},
	"200": {},
}

// Source names used in FieldError and logs.
const (
	SourceDocCount        = "doc_count"
	SourceTimeSeries      = "time_series"
	SourceInstitution     = "institution"
	SourceRelatedKeywords = "related_keywords"
	SourceStatutes        = "statutes"
)
