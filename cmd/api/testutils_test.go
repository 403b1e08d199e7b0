package main

import (
	"bytes"
	"io"
	"log/slog"
	"movies/proj/internal/config"
	"movies/proj/internal/domain/models"
	"movies/proj/internal/storage/memory"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

var testOrigins = []string{
	"http://localhost:8080",
	"http://localhost:1234",
	"https://movies.com",
	"https://midu.dev",
}

func NewTestApplication(seed []models.Movie, t *testing.T) *Application {
	t.Helper()
	cfg := &config.Config{CORS: config.CORS{AllowedOrigins: testOrigins}}
	storage, err := memory.New(seed)
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApplication(cfg, log, storage)
	t.Cleanup(app.Close)
	return app
}

type testClient struct {
	t       *testing.T
	handler http.Handler
}

func newTestClient(t *testing.T, app *Application) *testClient {
	return &testClient{t: t, handler: app.routes()}
}

func (c *testClient) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}
	request := httptest.NewRequest(method, path, reader)
	if reader != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		request.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &v), recorder.Body.String())
	return v
}
