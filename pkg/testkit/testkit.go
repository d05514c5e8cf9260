// Package testkit holds shared helpers for the service's tests: an isolated
// in-memory database per test, and JSON request/response plumbing for
// exercising handlers through a real router.
package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB opens a fresh in-memory SQLite database scoped to the test and migrates
// the given models. Each test gets its own schema, so tests can run in
// parallel without sharing state.
func DB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...), "migrate test schema")
	}

	return db
}

// Request builds an *http.Request with a JSON-encoded body and content type.
// body may be nil for body-less methods.
func Request(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "encode request body")
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Do runs a request through the handler and returns the recorder.
func Do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorded response body into dest.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest),
		"decode response body: %s", rec.Body.String())
}

// Envelope mirrors the standard JSON response envelope for assertions.
type Envelope struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Errors  map[string]string      `json:"errors"`
	Extra   map[string]interface{} `json:"-"`
}

// DecodeEnvelope unmarshals the standard response envelope.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	DecodeJSON(t, rec, &env)
	return env
}
