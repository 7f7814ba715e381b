package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"domainsync/pkg/controller"
	"domainsync/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "10.0.0.1:1", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "9.8.7.6"},
		{"ipv6 forwarded", map[string]string{"X-Forwarded-For": "2001:db8::1"}, "10.0.0.1:1", "2001:db8::1"},
		{"garbage header ignored", map[string]string{"X-Forwarded-For": "<script>"}, "10.0.0.1:1", "10.0.0.1"},
		{"remote addr", nil, "10.0.0.1:12345", "10.0.0.1"},
		{"invalid remote addr passes through", nil, "not-an-addr", "not-an-addr"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/domains", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, controller.GetClientIP(req))
		})
	}
}

func serve(t *testing.T, req *http.Request, status int) (*httptest.ResponseRecorder, string, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(status)
	})

	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	return rec, seen, logs
}

func TestWithLogger_KeepsCallerRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/reconcile", nil)
	req.Header.Set(controller.RequestIDHeader, "req-42")

	rec, seen, logs := serve(t, req, http.StatusAccepted)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "req-42", seen)
	require.Equal(t, "req-42", rec.Header().Get(controller.RequestIDHeader))

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, "req-42", fields[string(controller.RequestIDKey)])
	require.Equal(t, "/v1/reconcile", fields["path"])
	require.Equal(t, int64(http.StatusAccepted), fields["status_code"])
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	for _, supplied := range []string{"", strings.Repeat("a", 200), "bad id\nwith newline"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/domains", nil)
		if supplied != "" {
			req.Header.Set(controller.RequestIDHeader, supplied)
		}

		rec, seen, _ := serve(t, req, http.StatusOK)

		_, err := uuid.Parse(seen)
		require.NoError(t, err, "expected a generated uuid for %q", supplied)
		require.Equal(t, seen, rec.Header().Get(controller.RequestIDHeader))
	}
}

func TestWithLogger_ServerErrorsAtWarn(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/domains", nil)

	rec, _, logs := serve(t, req, http.StatusInternalServerError)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestRequestID_Outside(t *testing.T) {
	require.Empty(t, controller.RequestID(context.Background()))
}
