package testutil

import (
	"context"
	"sync"
	"time"

	"glitchsdk/internal/providers"
	"glitchsdk/models"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the recorded log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.Logs))
	copy(out, m.Logs)
	return out
}

// MockTransport implements providers.Transport and records every send.
type MockTransport struct {
	mu       sync.Mutex
	Response string
	Err      error
	Calls    []SendCall
}

type SendCall struct {
	URL     string
	Headers []string
	Body    string
}

func (m *MockTransport) Send(_ context.Context, url string, headers []string, body string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, SendCall{URL: url, Headers: headers, Body: body})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockTransport) LastCall() SendCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[len(m.Calls)-1]
}

// MockMetrics implements providers.MetricsProviderInterface with counters.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    map[string]int // "endpoint/outcome"
	ProbeMisses map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:    make(map[string]int),
		ProbeMisses: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint+"/"+outcome]++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) ObservePayloadBytes(_ string, _ int)              {}

func (m *MockMetrics) IncProbeMisses(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProbeMisses[key]++
}

// MockProber implements probe.Prober with canned data.
type MockProber struct {
	Facts     map[string]string
	Collected models.FingerprintComponents
}

func (m *MockProber) Probe(key string) string {
	if v, ok := m.Facts[key]; ok {
		return v
	}
	return "unknown"
}

func (m *MockProber) Collect() models.FingerprintComponents {
	return m.Collected
}
