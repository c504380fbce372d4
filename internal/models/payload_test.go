package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantKind PayloadKind
		wantJSON string
	}{
		{
			name:     "json object",
			body:     `{"action":"click"}`,
			wantKind: PayloadJSON,
			wantJSON: `{"action":"click"}`,
		},
		{
			name:     "json array with surrounding whitespace",
			body:     "  [1,2,3]\n",
			wantKind: PayloadJSON,
			wantJSON: `[1,2,3]`,
		},
		{
			name:     "plain text",
			body:     "hello world",
			wantKind: PayloadText,
			wantJSON: `"hello world"`,
		},
		{
			name:     "truncated json falls back to text",
			body:     `{"action":`,
			wantKind: PayloadText,
			wantJSON: `"{\"action\":"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := ParsePayload([]byte(tt.body))
			assert.Equal(t, tt.wantKind, p.Kind())

			out, err := json.Marshal(p)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(out))
		})
	}
}

func TestPayload_MissingMarshalsNull(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(MissingPayload())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestPayload_TextKeepsRawBody(t *testing.T) {
	t.Parallel()

	p := ParsePayload([]byte("not json "))
	assert.Equal(t, "not json ", p.Text())
}

func TestEvent_JSONRoundTripPreservesPayloadVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload Payload
	}{
		{name: "missing", payload: MissingPayload()},
		{name: "text", payload: TextPayload("raw")},
		{name: "json", payload: JSONPayload([]byte(`{"action":"click"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := &Event{
				Ts:        "2024-01-02T03:04:05.123Z",
				RequestID: "req-1",
				Method:    "POST",
				Path:      "/e",
				Payload:   tt.payload,
				Browser:   "Unknown",
				OS:        "Unknown",
				Device:    "Unknown",
			}

			data, err := json.Marshal(in)
			require.NoError(t, err)

			var out Event
			require.NoError(t, json.Unmarshal(data, &out))
			assert.Equal(t, tt.payload.Kind(), out.Payload.Kind())
			assert.Equal(t, tt.payload.Text(), out.Payload.Text())
			if tt.payload.Kind() == PayloadJSON {
				assert.JSONEq(t, string(tt.payload.Raw()), string(out.Payload.Raw()))
			}
		})
	}
}

func TestEvent_OptionalFieldsOmitted(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&Event{Ts: "2024-01-02T03:04:05.123Z", RequestID: "r", Method: "GET", Path: "/e"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "ua")
	assert.NotContains(t, fields, "referer")
	assert.NotContains(t, fields, "query")
	assert.Contains(t, fields, "payload")
	assert.Nil(t, fields["payload"])
}
