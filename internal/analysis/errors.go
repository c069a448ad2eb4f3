package analysis

import "errors"

var (
	ErrEmptyQuery    = errors.New("query is empty")
	ErrQueryTooLong  = errors.New("query is too long")
	ErrAggregation   = errors.New("evidence aggregation failed")
	ErrSummarization = errors.New("summarization failed")
)
