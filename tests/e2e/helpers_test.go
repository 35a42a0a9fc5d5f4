//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/ecovoice-backend/internal/app"
	"github.com/heartmarshall/ecovoice-backend/internal/config"
)

// modelReply satisfies both the image description and the scoring schema,
// so one fake model serves every stage.
const modelReply = `{"caption":"solar panels on a roof","tags":["solar","roof"],` +
	`"impact":"Rooftop solar displaces grid power.","advice":"Great investment, keep it clean.","ecopoints":12}`

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL        string
	Client     *http.Client
	Pool       *pgxpool.Pool
	ModelCalls *atomic.Int32
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeModel answers every Gemini generateContent call with reply.
func fakeModel(t *testing.T, reply string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": reply}}},
				"finishReason": "STOP",
			}},
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Shared, migrated database.
	dsn := testhelper.DSN(t)
	pool := testhelper.SetupTestDB(t)

	// 2. Fake model and an unstarted server, so signed URLs can point back
	// at the server itself.
	model, calls := fakeModel(t, modelReply)
	srv := httptest.NewUnstartedServer(nil)
	srv.Start()
	t.Cleanup(srv.Close)

	// 3. Configuration.
	cfg := &config.Config{
		Server: config.ServerConfig{ShutdownTimeout: 5 * time.Second},
		Database: config.DatabaseConfig{
			Driver:   config.DriverPostgres,
			DSN:      dsn,
			MaxConns: 5,
			MinConns: 1,
		},
		Blob: config.BlobConfig{
			RootDir:        t.TempDir(),
			PublicBaseURL:  srv.URL,
			MaxUploadBytes: 1 << 20,
		},
		Signing: config.SigningConfig{
			Secret:  "test-secret-at-least-32-chars-long!!",
			Issuer:  "ecovoice-e2e",
			ReadTTL: time.Hour,
		},
		Scoring: config.ScoringConfig{
			Provider:        config.ProviderGemini,
			Model:           "gemini-test",
			Temperature:     0.7,
			TopP:            0.95,
			MaxOutputTokens: 400,
			Timeout:         10 * time.Second,
		},
		Vision: config.VisionConfig{Provider: config.ProviderGemini, Model: "gemini-test", Timeout: 10 * time.Second},
		Speech: config.SpeechConfig{Model: "gemini-test", Language: "en-US", Timeout: 10 * time.Second, TempDir: t.TempDir()},
		Gemini: config.GeminiConfig{APIKey: "test-key", BaseURL: model.URL + "/"},
		Ledger: config.LedgerConfig{MaxAttempts: 10, BaseBackoff: time.Millisecond, MaxBackoff: 20 * time.Millisecond},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{Enabled: true, AnalyzePerMin: 1000, UploadPerMin: 1000, CleanupInterval: time.Minute},
	}

	// 4. Application and handler.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	a, err := app.New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	handler, stop := a.Handler()
	t.Cleanup(stop)
	srv.Config.Handler = handler

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		ModelCalls: calls,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// postJSON sends body as JSON and returns status + decoded object.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// getJSON fetches path and returns status + decoded object.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// upload posts one multipart file and returns status + the stored key.
func (ts *testServer) upload(t *testing.T, filename, contentType string, content []byte) (int, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := ts.Client.Post(ts.URL+"/api/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	key, _ := result["url"].(string)
	return resp.StatusCode, key
}

// errorCode extracts the "code" field of an error body.
func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	code, ok := body["code"].(string)
	require.True(t, ok, "expected code in %v", body)
	return code
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return strings.TrimSpace(string(b))
}
