package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/havenlabs/screend/internal/events"
	"github.com/havenlabs/screend/internal/screening"
)

// capturePublisher records published alerts for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	alerts []events.Alert
}

func (p *capturePublisher) Publish(_ context.Context, alert events.Alert) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, alert)
	return nil
}

func (p *capturePublisher) Close() {}

func (p *capturePublisher) published() []events.Alert {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Alert(nil), p.alerts...)
}

func newTestServer(t *testing.T, publisher events.Publisher) *Server {
	t.Helper()
	srv, err := NewServer(screening.MustNew(nil), publisher, zap.NewNop(), nil)
	require.NoError(t, err)
	return srv
}

func doAnalyze(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestNewServer(t *testing.T) {
	t.Run("requires screener", func(t *testing.T) {
		srv, err := NewServer(nil, nil, zap.NewNop(), nil)
		assert.Error(t, err)
		assert.Nil(t, srv)
	})

	t.Run("requires logger", func(t *testing.T) {
		srv, err := NewServer(screening.MustNew(nil), nil, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, srv)
	})

	t.Run("nil publisher falls back to noop", func(t *testing.T) {
		srv, err := NewServer(screening.MustNew(nil), nil, zap.NewNop(), nil)
		require.NoError(t, err)
		require.NotNil(t, srv)
	})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleAnalyze(t *testing.T) {
	t.Run("screens a message", func(t *testing.T) {
		srv := newTestServer(t, nil)
		rec := doAnalyze(t, srv, `{"message":"I had a panic attack at work. My heart is racing and I can't breathe."}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		_, err := uuid.Parse(resp.AnalysisID)
		assert.NoError(t, err)

		require.NotNil(t, resp.Context)
		assert.True(t, resp.Context.Panic.ThresholdMet)
		assert.Contains(t, resp.Triggers, screening.TriggerWork)
		require.NotNil(t, resp.Psychosis)
		assert.False(t, resp.Psychosis.HasIndicators)
		assert.GreaterOrEqual(t, resp.DurationMS, 0.0)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		srv := newTestServer(t, nil)
		rec := doAnalyze(t, srv, `{"message":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		srv := newTestServer(t, nil)
		rec := doAnalyze(t, srv, `{"message":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("crisis publishes alert without message text", func(t *testing.T) {
		pub := &capturePublisher{}
		srv := newTestServer(t, pub)

		rec := doAnalyze(t, srv, `{"message":"I keep thinking about killing myself. I can't go on."}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		alerts := pub.published()
		require.Len(t, alerts, 1)
		assert.Equal(t, events.KindCrisis, alerts[0].Kind)
		assert.Equal(t, resp.AnalysisID, alerts[0].AnalysisID)
		assert.Equal(t, resp.Context.Crisis.Score, alerts[0].Score)
		assert.False(t, alerts[0].Timestamp.IsZero())

		payload, err := json.Marshal(alerts[0])
		require.NoError(t, err)
		assert.NotContains(t, string(payload), "killing")
	})

	t.Run("psychosis publishes alert", func(t *testing.T) {
		pub := &capturePublisher{}
		srv := newTestServer(t, pub)

		rec := doAnalyze(t, srv, `{"message":"The CIA is following me everywhere I go."}`)
		require.Equal(t, http.StatusOK, rec.Code)

		alerts := pub.published()
		require.Len(t, alerts, 1)
		assert.Equal(t, events.KindPsychosis, alerts[0].Kind)
	})

	t.Run("calm message publishes nothing", func(t *testing.T) {
		pub := &capturePublisher{}
		srv := newTestServer(t, pub)

		rec := doAnalyze(t, srv, `{"message":"I'm feeling calm now, managing well after therapy."}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, pub.published())
	})
}

func TestSetScreener(t *testing.T) {
	srv := newTestServer(t, nil)

	// A replacement catalog where only a custom keyword scores crisis.
	cats := screening.DefaultCategories()
	for i := range cats {
		if cats[i].Name == screening.CategoryCrisis {
			cats[i].Patterns = []screening.Pattern{
				{Regex: `red alert`, Weight: 5, Description: "custom crisis cue"},
			}
		}
	}
	replacement := screening.MustNew(&screening.Config{Categories: cats})

	rec := doAnalyze(t, srv, `{"message":"red alert"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var before AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))
	assert.False(t, before.Context.Crisis.ThresholdMet)

	srv.SetScreener(replacement)

	rec = doAnalyze(t, srv, `{"message":"red alert"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var after AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.True(t, after.Context.Crisis.ThresholdMet)

	// nil swap is ignored
	srv.SetScreener(nil)
	rec = doAnalyze(t, srv, `{"message":"red alert"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiting(t *testing.T) {
	srv, err := NewServer(screening.MustNew(nil), nil, zap.NewNop(), &Config{
		Host:      "localhost",
		Port:      9180,
		RateLimit: 1,
		RateBurst: 1,
	})
	require.NoError(t, err)

	first := httptest.NewRequest(http.MethodGet, "/health", nil)
	first.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	second := httptest.NewRequest(http.MethodGet, "/health", nil)
	second.RemoteAddr = "192.0.2.1:1234"
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
