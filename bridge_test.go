package genbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeRun_Success(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "literal-key", r.URL.Query().Get("key"))

		writeJSON(t, w, textResponse("bridged reply", intPtr(42)))
	})

	input := fmt.Sprintf(`{
		"prompt": "Say something",
		"url": %q,
		"api_key": "literal-key"
	}`, srv.URL+"?key=GEMINI_API_KEY")

	var out bytes.Buffer

	bridge := NewBridge(zerolog.Nop())
	err := bridge.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	var res Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "bridged reply", res.Text)
	assert.Equal(t, 42, res.UsageTokens)
	assert.True(t, bytes.HasSuffix(out.Bytes(), []byte("\n")))
}

func TestBridgeRun_ForwardsMaxTokens(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		req := readBody(t, r)

		gc, ok := req["generationConfig"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(128), gc["maxOutputTokens"])

		writeJSON(t, w, textResponse("ok", intPtr(1)))
	})

	input := fmt.Sprintf(`{"prompt": "p", "max_tokens": 128, "url": %q, "api_key": "k"}`, srv.URL)

	var out bytes.Buffer

	bridge := NewBridge(zerolog.Nop())
	require.NoError(t, bridge.Run(context.Background(), strings.NewReader(input), &out))
}

func TestBridgeRun_MalformedInput(t *testing.T) {
	var out bytes.Buffer

	bridge := NewBridge(zerolog.Nop())
	err := bridge.Run(context.Background(), strings.NewReader("not json"), &out)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, out.Len(), "no partial output may be written")
}

func TestBridgeRun_MissingRequiredFields(t *testing.T) {
	var out bytes.Buffer

	bridge := NewBridge(zerolog.Nop())
	err := bridge.Run(context.Background(), strings.NewReader(`{"prompt": "only a prompt"}`), &out)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, out.Len())
}

func TestBridgeRun_UpstreamError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request body"))
	})

	input := fmt.Sprintf(`{"prompt": "p", "url": %q, "api_key": "k"}`, srv.URL)

	var out bytes.Buffer

	bridge := NewBridge(zerolog.Nop())
	err := bridge.Run(context.Background(), strings.NewReader(input), &out)

	assert.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "400")
	assert.Zero(t, out.Len())
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid",
			data: `{"prompt": "p", "url": "https://api.example", "api_key": "k"}`,
		},
		{
			name: "valid with optionals",
			data: `{"prompt": "p", "url": "u", "api_key": "k", "max_tokens": 10, "model": "m"}`,
		},
		{
			name:    "not json",
			data:    `not json`,
			wantErr: true,
		},
		{
			name:    "missing api_key",
			data:    `{"prompt": "p", "url": "u"}`,
			wantErr: true,
		},
		{
			name:    "wrong type for max_tokens",
			data:    `{"prompt": "p", "url": "u", "api_key": "k", "max_tokens": "ten"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "p", req.Prompt)
		})
	}
}
