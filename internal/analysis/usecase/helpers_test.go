package usecase

import (
	"context"
	"sync"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records every call and answers through the optional func fields.
// Unset funcs return a single item labelled after the call.
type mockRepo struct {
	mu    sync.Mutex
	calls []string

	docCountOpts   []repository.DocCountOptions
	timeSeriesOpts []repository.TimeSeriesOptions

	docCountFunc        func(opt repository.DocCountOptions) ([]analysis.EvidenceItem, error)
	timeSeriesFunc      func(opt repository.TimeSeriesOptions) ([]analysis.EvidenceItem, error)
	institutionFunc     func(opt repository.InstitutionOptions) ([]analysis.EvidenceItem, error)
	relatedKeywordsFunc func(opt repository.RelatedKeywordsOptions) ([]analysis.EvidenceItem, error)
}

func (m *mockRepo) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockRepo) callCount(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (m *mockRepo) DocCount(ctx context.Context, opt repository.DocCountOptions) ([]analysis.EvidenceItem, error) {
	m.record("doc_count:" + string(opt.Target))
	m.mu.Lock()
	m.docCountOpts = append(m.docCountOpts, opt)
	m.mu.Unlock()
	if m.docCountFunc != nil {
		return m.docCountFunc(opt)
	}
	return []analysis.EvidenceItem{{Label: opt.Target.Label(), Count: 1}}, nil
}

func (m *mockRepo) TimeSeries(ctx context.Context, opt repository.TimeSeriesOptions) ([]analysis.EvidenceItem, error) {
	m.record("time_series")
	m.mu.Lock()
	m.timeSeriesOpts = append(m.timeSeriesOpts, opt)
	m.mu.Unlock()
	if m.timeSeriesFunc != nil {
		return m.timeSeriesFunc(opt)
	}
	return []analysis.EvidenceItem{{Label: "20230101", Count: 2}}, nil
}

func (m *mockRepo) Institution(ctx context.Context, opt repository.InstitutionOptions) ([]analysis.EvidenceItem, error) {
	m.record("institution")
	if m.institutionFunc != nil {
		return m.institutionFunc(opt)
	}
	return []analysis.EvidenceItem{{Label: "institution", Count: 3}}, nil
}

func (m *mockRepo) RelatedKeywords(ctx context.Context, opt repository.RelatedKeywordsOptions) ([]analysis.EvidenceItem, error) {
	m.record("related_keywords")
	if m.relatedKeywordsFunc != nil {
		return m.relatedKeywordsFunc(opt)
	}
	return []analysis.EvidenceItem{{Label: "keyword", Count: 4}}, nil
}

func (m *mockRepo) Statutes(ctx context.Context, opt repository.StatutesOptions) ([]analysis.EvidenceItem, error) {
	m.record("statutes")
	return nil, nil
}

// mockSummarizer returns a canned response and keeps the prompt it was given.
type mockSummarizer struct {
	response string
	err      error
	got      []analysis.Message
}

func (m *mockSummarizer) Summarize(ctx context.Context, messages []analysis.Message) (string, error) {
	m.got = messages
	return m.response, m.err
}
