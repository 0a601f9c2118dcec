// Package backup implements the JSON backup interchange: a versioned
// envelope around the full meeting collection, with a tolerant importer
// that drops malformed records instead of aborting.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/torisaki/mtg/internal/core"
)

// Version is the interchange format version written on export.
const Version = "1.0"

// Envelope is the top-level backup document.
type Envelope struct {
	ExportDate string         `json:"exportDate"`
	Version    string         `json:"version"`
	Meetings   []core.Meeting `json:"meetings"`
}

// Export serializes the full collection into a backup document.
func Export(meetings []core.Meeting, now time.Time) ([]byte, error) {
	env := Envelope{
		ExportDate: now.Format(time.RFC3339),
		Version:    Version,
		Meetings:   meetings,
	}
	return json.MarshalIndent(env, "", "  ")
}

// Filename names a backup export after the day it was taken.
func Filename(now time.Time) string {
	return fmt.Sprintf("meeting-data-backup-%s.json", now.Format("2006-01-02"))
}

// Import validates a backup document and returns the records that pass
// the element-wise shape check: numeric id, textual name, and a
// preferredOptions array. Malformed elements are silently dropped; a
// missing or non-array meetings field fails the whole import.
func Import(data []byte) ([]core.Meeting, error) {
	var envelope struct {
		Meetings []json.RawMessage `json:"meetings"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("invalid backup file: %w", err)
	}
	if envelope.Meetings == nil {
		return nil, errors.New("invalid backup file: missing meetings array")
	}

	valid := make([]core.Meeting, 0, len(envelope.Meetings))
	for _, raw := range envelope.Meetings {
		var probe map[string]any
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if _, ok := probe["id"].(float64); !ok {
			continue
		}
		if _, ok := probe["name"].(string); !ok {
			continue
		}
		if _, ok := probe["preferredOptions"].([]any); !ok {
			continue
		}
		var m core.Meeting
		if err := json.Unmarshal(raw, &m); err != nil {
			continue
		}
		valid = append(valid, m)
	}
	return valid, nil
}
