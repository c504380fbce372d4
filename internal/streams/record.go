package streams

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"tracking-pixel/internal/models"

	"github.com/goccy/go-json"
)

var ErrMalformedRecord = errors.New("malformed stream record")

// Record is one opaque stream entry as delivered to consumers.
type Record struct {
	// ID identifies the record within its stream, e.g. a Kinesis sequence number.
	ID           string
	PartitionKey string
	Data         []byte
}

// EncodeEvent serializes an event as one newline-terminated JSON line.
func EncodeEvent(event *models.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", event.RequestID, err)
	}
	return append(data, '\n'), nil
}

// DecodeEvent parses record data that is either native JSON or base64 of JSON.
func DecodeEvent(data []byte) (*models.Event, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrMalformedRecord)
	}

	if trimmed[0] != '{' {
		decoded, err := base64.StdEncoding.DecodeString(string(trimmed))
		if err != nil {
			return nil, fmt.Errorf("%w: neither JSON nor base64: %w", ErrMalformedRecord, err)
		}
		trimmed = bytes.TrimSpace(decoded)
	}

	var event models.Event
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return &event, nil
}
