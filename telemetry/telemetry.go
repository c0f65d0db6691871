// Package telemetry builds search event payloads that are safe to hand to a
// telemetry sink: query text is redacted before it is recorded.
package telemetry

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/token"
	"github.com/codesurf/querytext/transform"
)

// SearchEvent is a single recorded search. Query holds the sanitized form
// only; the raw query never enters the event.
type SearchEvent struct {
	ID           uuid.UUID `json:"id"`
	Query        string    `json:"query"`
	FilterCount  int       `json:"filter_count"`
	PatternCount int       `json:"pattern_count"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// NewSearchEvent builds an event for a raw query.
func NewSearchEvent(query string) SearchEvent {
	event := SearchEvent{
		ID:         uuid.New(),
		Query:      transform.SanitizeQueryForTelemetry(query),
		RecordedAt: time.Now().UTC(),
	}
	tokens, err := scanner.Scan(query, token.PatternLiteral)
	if err != nil {
		return event
	}
	for _, t := range tokens {
		switch t.(type) {
		case token.Filter:
			event.FilterCount++
		case token.Pattern:
			event.PatternCount++
		}
	}
	return event
}

// JSON renders the event for a telemetry sink.
func (e SearchEvent) JSON() ([]byte, error) {
	return json.Marshal(e)
}
