package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

type PayloadKind int

const (
	PayloadMissing PayloadKind = iota
	PayloadText
	PayloadJSON
)

// Payload is the body of a custom event: absent, raw text, or a JSON value.
// It serializes as null, a JSON string, or the JSON value itself.
type Payload struct {
	kind PayloadKind
	text string
	raw  json.RawMessage
}

func MissingPayload() Payload {
	return Payload{kind: PayloadMissing}
}

func TextPayload(text string) Payload {
	return Payload{kind: PayloadText, text: text}
}

func JSONPayload(raw []byte) Payload {
	return Payload{kind: PayloadJSON, raw: append(json.RawMessage(nil), raw...)}
}

// ParsePayload keeps body as a JSON value when it parses, else as raw text.
func ParsePayload(body []byte) Payload {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return JSONPayload(trimmed)
	}
	return TextPayload(string(body))
}

func (p Payload) Kind() PayloadKind {
	return p.kind
}

func (p Payload) IsMissing() bool {
	return p.kind == PayloadMissing
}

func (p Payload) Text() string {
	return p.text
}

func (p Payload) Raw() json.RawMessage {
	return p.raw
}

func (p Payload) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case PayloadText:
		return json.Marshal(p.text)
	case PayloadJSON:
		return p.raw, nil
	default:
		return []byte("null"), nil
	}
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*p = MissingPayload()
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*p = TextPayload(s)
	default:
		*p = JSONPayload(trimmed)
	}
	return nil
}
