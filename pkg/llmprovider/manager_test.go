package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	failTimes  int // fail this many calls, then succeed
	alwaysFail bool
	response   *Response
	callCount  int
	closed     bool
	closeErr   error
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.alwaysFail || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }
func (m *mockProvider) Close() error {
	m.closed = true
	return m.closeErr
}

// mockLogger counts info and warn lines
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func userRequest() *Request {
	return &Request{Messages: []Message{{Role: "user", Content: "hello"}}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: &Response{Text: "from primary", ProviderName: "primary", Usage: &Usage{InputTokens: 10}},
	}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "from primary" {
		t.Errorf("Expected text from primary, got: %q", resp.Text)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn lines, got %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_RetrySucceeds(t *testing.T) {
	primary := &mockProvider{
		name:      "primary",
		failTimes: 1,
		response:  &Response{Text: "second try"},
	}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), userRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "second try" || primary.callCount != 2 {
		t.Errorf("unexpected result %q after %d calls", resp.Text, primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "qwen", alwaysFail: true}
	secondary := &mockProvider{
		name:     "deepseek",
		response: &Response{Text: "from secondary", ProviderName: "deepseek"},
	}
	logger := &mockLogger{}
	config := &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}
	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "deepseek" {
		t.Errorf("Expected provider name 'deepseek', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "qwen", alwaysFail: true}
	secondary := &mockProvider{name: "deepseek", alwaysFail: true}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), userRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "deepseek" {
		t.Errorf("Expected last ProviderError from deepseek, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "qwen", alwaysFail: true}
	secondary := &mockProvider{name: "deepseek", response: &Response{Text: "x"}}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), userRequest()); err == nil {
		t.Fatal("Expected error when fallback disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), userRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "qwen"}}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "qwen", alwaysFail: true}
	config := &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Second, MaxTotalTimeout: 20 * time.Millisecond}
	manager := NewManager([]Provider{primary}, config, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), userRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("retry delay was not interrupted: %v", elapsed)
	}
}

func TestManagerClose(t *testing.T) {
	a := &mockProvider{name: "qwen"}
	b := &mockProvider{name: "deepseek", closeErr: errors.New("close failed")}
	manager := NewManager([]Provider{a, b}, &Config{}, &mockLogger{})

	err := manager.Close()
	if !a.closed || !b.closed {
		t.Error("Expected every provider to be closed")
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "deepseek" {
		t.Errorf("Expected ProviderError from deepseek, got: %v", err)
	}
}

func TestGenerateContent_ProviderErrorCountsAttempts(t *testing.T) {
	primary := &mockProvider{name: "qwen", model: "qwen2.5-7b-instruct", alwaysFail: true}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest())

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ProviderError, got: %v", err)
	}
	if pe.Attempts != 3 || pe.Model != "qwen2.5-7b-instruct" {
		t.Errorf("unexpected provider error: %+v", pe)
	}
	if primary.callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", primary.callCount)
	}
}
