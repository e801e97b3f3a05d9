package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Message: "bad"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&ErrConfiguration{Message: "no key"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrUpstream{Message: "model"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unknown")))
}

func TestWriteErrorDerivesStatusAndPayload(t *testing.T) {
	srv := &Server{}

	write := func(err error) (int, map[string]string) {
		rec := httptest.NewRecorder()
		srv.writeError(rec, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		return rec.Code, payload
	}

	status, payload := write(&ErrValidation{Message: "Invalid JSON in request body"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON in request body", payload["error"])
	assert.NotContains(t, payload, "details")

	status, payload = write(&ErrConfiguration{Message: "GEMINI_API_KEY is not configured"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Configuration error", payload["error"])
	assert.Equal(t, "GEMINI_API_KEY is not configured", payload["details"])

	status, payload = write(&ErrUpstream{Message: "Service temporarily unavailable", Cause: errors.New("model timeout")})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Service temporarily unavailable", payload["error"])
	assert.Equal(t, "model timeout", payload["details"])

	status, payload = write(errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", payload["error"])
}

func TestErrUpstreamUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &ErrUpstream{Message: "model call", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "timeout")
}
