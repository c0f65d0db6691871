package telemetry

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/uuid"
)

func TestNewSearchEvent(t *testing.T) {
	event := NewSearchEvent("repo:secret/name lang:go foo bar")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "repo:[REDACTED] lang:go foo bar", event.Query)
	assert.Equal(t, 2, event.FilterCount)
	assert.Equal(t, 2, event.PatternCount)
	assert.False(t, event.RecordedAt.IsZero())
}

func TestNewSearchEventNeverCarriesRawQuery(t *testing.T) {
	event := NewSearchEvent("repo:topsecret file:classified.go foo")
	assert.False(t, strings.Contains(event.Query, "topsecret"))
	assert.False(t, strings.Contains(event.Query, "classified.go"))
}

func TestNewSearchEventUnscannableQuery(t *testing.T) {
	event := NewSearchEvent(`repo:secret "unterminated`)
	assert.Equal(t, "[REDACTED]", event.Query)
	assert.Equal(t, 0, event.FilterCount)
	assert.Equal(t, 0, event.PatternCount)
}

func TestSearchEventJSON(t *testing.T) {
	event := NewSearchEvent("repo:a foo")
	data, err := event.JSON()
	assert.NoError(t, err)

	payload := string(data)
	assert.True(t, strings.Contains(payload, `"query":"repo:[REDACTED] foo"`))
	assert.True(t, strings.Contains(payload, `"filter_count":1`))
	assert.True(t, strings.Contains(payload, `"pattern_count":1`))
}
