package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catbot/catbot-api/app"
	"github.com/catbot/catbot-api/config"
	"github.com/catbot/catbot-api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T, origins ...string) *httptest.Server {
	t.Helper()
	if origins == nil {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	settings := config.Settings{
		AppName:     "CatBot API",
		Environment: "test",
		CORSOrigins: config.OriginList(origins),
	}
	deps, err := app.Start(context.Background(), settings, zaptest.NewLogger(t))
	require.NoError(t, err)

	ts := httptest.NewServer(SetupRoutes(deps))
	t.Cleanup(func() {
		ts.Close()
		_ = deps.Close(context.Background())
	})
	return ts
}

func do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func newRequest(t *testing.T, method, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	return req
}

func TestEndpoints(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
		expectedAllow  string
	}{
		{"health check", http.MethodGet, "/api/health", http.StatusOK, `{"status":"healthy","version":"0.1.0"}`, ""},
		{"root", http.MethodGet, "/", http.StatusOK, `{"message":"Welcome to CatBot API!","docs":"/api/docs","version":"0.1.0"}`, ""},
		{"unknown route", http.MethodGet, "/api/v1/cats", http.StatusNotFound, `{"detail":"Not Found"}`, ""},
		{"wrong method", http.MethodPost, "/api/health", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`, "GET"},
		{"wrong method on root", http.MethodDelete, "/", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`, "GET"},
		{"versioned router is not mounted", http.MethodGet, "/api/v1", http.StatusNotFound, `{"detail":"Not Found"}`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, newRequest(t, tc.method, ts.URL+tc.path))

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "endpoint: %s %s", tc.method, tc.path)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, body)
			assert.Equal(t, tc.expectedAllow, resp.Header.Get("Allow"))
		})
	}
}

func TestDocumentationEndpoints(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/api/openapi.json", "application/json", `"title":"CatBot API"`},
		{"/api/docs", "text/html; charset=utf-8", "Swagger UI"},
		{"/api/redoc", "text/html; charset=utf-8", "ReDoc"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := do(t, newRequest(t, http.MethodGet, ts.URL+tc.path))

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.contentType, resp.Header.Get("Content-Type"))
			assert.Contains(t, body, tc.contains)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	ts := newTestServer(t)

	preflight := func(origin string) *http.Request {
		req := newRequest(t, http.MethodOptions, ts.URL+"/api/health")
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
		return req
	}

	t.Run("preflight from allowed origin", func(t *testing.T) {
		resp, _ := do(t, preflight("http://localhost:3000"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.MethodPut, resp.Header.Get("Access-Control-Allow-Methods"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "X-Custom-Header")
	})

	t.Run("preflight from second allowed origin", func(t *testing.T) {
		resp, _ := do(t, preflight("http://127.0.0.1:3000"))

		assert.Equal(t, "http://127.0.0.1:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		resp, _ := do(t, preflight("http://evil.example"))

		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("simple request from allowed origin", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, ts.URL+"/api/health")
		req.Header.Set("Origin", "http://localhost:3000")

		resp, _ := do(t, req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("simple request from unknown origin", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, ts.URL+"/api/health")
		req.Header.Set("Origin", "http://evil.example")

		resp, body := do(t, req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"status":"healthy","version":"0.1.0"}`, body)
	})
}

func TestCORSWithEmptyOriginList(t *testing.T) {
	ts := newTestServer(t, []string{}...)

	req := newRequest(t, http.MethodOptions, ts.URL+"/api/health")
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, _ := do(t, req)

	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	t.Run("generated when absent", func(t *testing.T) {
		resp, _ := do(t, newRequest(t, http.MethodGet, ts.URL+"/api/health"))
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("echoed when present", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, ts.URL+"/")
		req.Header.Set(middleware.RequestIDHeader, "cat-42")

		resp, _ := do(t, req)
		assert.Equal(t, "cat-42", resp.Header.Get(middleware.RequestIDHeader))
	})
}

func TestCORSOptions(t *testing.T) {
	t.Run("uses configured origins", func(t *testing.T) {
		opts := CORSOptions(config.Settings{CORSOrigins: config.OriginList{"http://a"}})

		assert.Equal(t, []string{"http://a"}, opts.AllowedOrigins)
		assert.True(t, opts.AllowCredentials)
		assert.Equal(t, []string{"*"}, opts.AllowedHeaders)
		assert.Contains(t, opts.AllowedMethods, http.MethodDelete)
		assert.Nil(t, opts.AllowOriginFunc)
	})

	t.Run("empty list rejects every origin", func(t *testing.T) {
		opts := CORSOptions(config.Settings{})

		require.NotNil(t, opts.AllowOriginFunc)
		assert.False(t, opts.AllowOriginFunc(nil, "http://localhost:3000"))
	})
}
