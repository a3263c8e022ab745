package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestLoggerKeyValuePairs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithWriter("debug", &buf)
	l.Info("fetched resource", "path", "/redfish/v1/Chassis/1", "status", 200)

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fetched resource", entry["message"])
	assert.Equal(t, "/redfish/v1/Chassis/1", entry["path"])
	assert.InDelta(t, 200, entry["status"], 0)
}

func TestLoggerDanglingKeyGoesToExtra(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithWriter("info", &buf)
	l.Warn("odd args", "lonely")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "lonely", entry["extra"])
}

func TestLoggerErrorMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithWriter("info", &buf)
	l.Error(errors.New("boom"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["message"])
}

func TestLoggerLevelFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		logged  bool
		message string
	}{
		{level: "error", logged: false, message: "info dropped at error"},
		{level: "warn", logged: false, message: "info dropped at warn"},
		{level: "info", logged: true, message: "info kept at info"},
		{level: "debug", logged: true, message: "info kept at debug"},
		{level: "bogus", logged: true, message: "unknown level means info"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			l := NewWithWriter(tc.level, &buf)
			l.Info(tc.message)

			assert.Equal(t, tc.logged, buf.Len() > 0)
		})
	}
}
