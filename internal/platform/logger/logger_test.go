package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "medimanager", Output: &buf})

	log.With(map[string]any{"request_id": "r1"}).Error("request failed", map[string]any{
		"error": errors.New("disk full"),
		"":      "dropped",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "medimanager", entry["app"])
	assert.Equal(t, "r1", entry["request_id"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Contains(t, entry, "ts")
	assert.NotContains(t, entry, "")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	log.Info("hidden", nil)
	log.Warn("shown", map[string]any{"k": "v"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "k=v")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("bogus"))
	assert.Equal(t, "error", Error.String())

	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
}
