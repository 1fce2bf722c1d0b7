package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/url-shortener/internal/service"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	wrap := func(kind error, msg string) error {
		return fmt.Errorf("service.op: %w", &service.Error{Kind: kind, Message: msg})
	}

	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", wrap(service.ErrValidation, "Url is incorrect. "), http.StatusBadRequest, "validation_error", "Url is incorrect. "},
		{"conflict", wrap(service.ErrConflict, "taken"), http.StatusConflict, "conflict", "taken"},
		{"unauthorized", wrap(service.ErrUnauthorized, "no"), http.StatusUnauthorized, "unauthorized", "no"},
		{"not_found", wrap(service.ErrNotFound, "URL not found. "), http.StatusNotFound, "not_found", "URL not found. "},
		{"bare_kind", service.ErrNotFound, http.StatusNotFound, "not_found", "not_found"},
		{"canceled", fmt.Errorf("x: %w", context.Canceled), StatusClientClosedRequest, "canceled", "canceled"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"},
		{"exhausted", fmt.Errorf("x: %w", service.ErrCodeSpaceExhausted), http.StatusInternalServerError, "internal", "internal error"},
		{"unknown", errors.New("pg: connection refused"), http.StatusInternalServerError, "internal", "internal error"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.Equal(t, tc.wantMsg, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_AddsRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	WriteError(rr, req, service.NewValidationError(MsgMalformedBody))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "rid-1", resp.Error.RequestID)
	require.Equal(t, MsgMalformedBody, resp.Error.Message)
}
