package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	"github.com/stretchr/testify/require"
)

// NewRequest builds a request whose context carries a discarding logger. body is JSON-encoded unless nil.
func NewRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

// Envelope is the decoded JSON response with a typed payload.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func DecodeEnvelope[T any](t *testing.T, rr *httptest.ResponseRecorder) Envelope[T] {
	t.Helper()

	var envelope Envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	return envelope
}
