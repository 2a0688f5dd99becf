package logging

import "sync"

// MockLogger is a Logger implementation for tests. It records every entry
// so assertions can inspect what was logged. Safe for concurrent use.
type MockLogger struct {
	mu            sync.Mutex
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry instead of exiting so tests can assert on it.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// WithError returns the same mock with an error attached to later entries.
func (m *MockLogger) WithError(err error) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingError = err
	return m
}

// WithField returns the same mock with a field attached to later entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingFields = append(m.pendingFields, Field{Key: key, Value: value})
	return m
}

// WithFields returns the same mock with fields attached to later entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingFields = append(m.pendingFields, fields...)
	return m
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
