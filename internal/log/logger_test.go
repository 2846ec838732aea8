package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	records := []map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		record := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestLogger(t *testing.T) {
	t.Run("ZeroValueIsNotInitialized", func(t *testing.T) {
		assert.False(t, Logger{}.IsInitialized())
	})

	t.Run("WritesJSONWithNamespace", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, LevelDebug)
		assert.True(t, logger.IsInitialized())

		logger.InfoNs(NsDatabase, "database opened", KV{"path": "students.db"})

		records := decodeLines(t, buf)
		require.Len(t, records, 1)
		assert.Equal(t, "INFO", records[0]["level"])
		assert.Equal(t, "database opened", records[0]["msg"])
		assert.Equal(t, "database", records[0]["ns"])
		assert.Equal(t, "students.db", records[0]["path"])
	})

	t.Run("FiltersBelowLevel", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, LevelWarn)

		logger.Debug("hidden")
		logger.Info("hidden")
		logger.Warn("shown")
		logger.ErrorNs(NsTutorial, "shown too")

		records := decodeLines(t, buf)
		require.Len(t, records, 2)
		assert.Equal(t, "WARN", records[0]["level"])
		assert.Equal(t, "ERROR", records[1]["level"])
	})

	t.Run("BaseKeyValues", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, LevelInfo, KV{"run": "abc"})

		logger.Info("first")
		logger.WarnNs(NsRepl, "second")

		records := decodeLines(t, buf)
		require.Len(t, records, 2)
		for _, record := range records {
			assert.Equal(t, "abc", record["run"])
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
		wantErr  bool
	}{
		{name: "debug", input: "debug", expected: LevelDebug},
		{name: "upper case", input: "WARN", expected: LevelWarn},
		{name: "surrounding spaces", input: " error ", expected: LevelError},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
