package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/preston-bernstein/wowp-data-service/internal/logging"
)

// NewBufferLogger returns a debug-level text logger writing to the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewLogger(logging.Config{Level: "debug", Output: &buf}), &buf
}

// NewJSONBufferLogger is NewBufferLogger with the JSON handler, for tests that
// inspect individual records with LogRecords.
func NewJSONBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewLogger(logging.Config{Level: "debug", Format: "json", Output: &buf}), &buf
}

// LogRecords decodes the JSON log lines in buf.
func LogRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		records = append(records, rec)
	}
	return records
}

// FindLog returns the first record with the given message.
func FindLog(records []map[string]any, msg string) (map[string]any, bool) {
	for _, rec := range records {
		if rec[slog.MessageKey] == msg {
			return rec, true
		}
	}
	return nil, false
}
