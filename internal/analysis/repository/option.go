package repository

import "minwon-analytics/internal/analysis"

// Optional string fields are omitted from the request when empty.

// DocCountOptions holds the parameters for the document-count source.
type DocCountOptions struct {
	SearchWord    string           // Omitted when empty
	DateFrom      string           // yyyyMMdd
	DateTo        string           // yyyyMMdd
	Target        analysis.Channel // Default: pttn
	SearchOption  string
	OmitDuplicate string
}

// TimeSeriesOptions holds the parameters for the keyword trend source.
type TimeSeriesOptions struct {
	SearchWord  string
	DateFrom    string           // yyyyMMddHHmmss
	DateTo      string           // yyyyMMddHHmmss
	Target      analysis.Channel // Default: pttn
	Period      string           // DAILY / MONTHLY / YEARLY (default MONTHLY)
	SortBy      string           // Default: NAME
	SortOrder   string           // Default: "true"
	MainSubCode string
}

// InstitutionOptions holds the parameters for the per-institution source.
type InstitutionOptions struct {
	SearchWord    string
	DateFrom      string           // yyyyMMdd
	DateTo        string           // yyyyMMdd
	Target        analysis.Channel // Default: pttn
	MainSubCode   string           // Institution code, default "0" (all)
	SearchOption  string
	OmitDuplicate string
}

// RelatedKeywordsOptions holds the parameters for the word-cloud source.
type RelatedKeywordsOptions struct {
	SearchWord    string
	DateFrom      string           // yyyyMMdd
	DateTo        string           // yyyyMMdd
	Target        analysis.Channel // Default: pttn
	ResultCount   int              // Default: 20
	OmitDuplicate string
}

// StatutesOptions holds the parameters for the related-statute source.
type StatutesOptions struct {
	SearchWord    string
	DateFrom      string           // yyyyMMdd
	DateTo        string           // yyyyMMdd
	Target        analysis.Channel // Default: pttn
	SearchOption  string
	OmitDuplicate string
}
