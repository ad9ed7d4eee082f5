package worker

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"acp/config"
	"acp/internal/delivery/worker/handler"
	"acp/internal/domain/constants"
	"acp/internal/domain/service"
	"acp/internal/errors"
	"acp/internal/infra/json"
	"acp/internal/infra/metrics"
	"acp/internal/infra/pubsub"
	"acp/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestWorker(t *testing.T, cfg *config.Config, validator handler.TokenValidator) (*workerServer, *metrics.Metrics) {
	t.Helper()

	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(cfg)

	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:         cfg,
		Logger:         logger,
		Tracker:        impl.NewScoreTrackingService(cfg, logger, m),
		TokenValidator: validator,
	})

	return newServer(cfg, logger, push, m), m
}

func pushBody(t *testing.T, event *service.ComplianceReportEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.ReportID
	msg.Subscription = "projects/test/subscriptions/reports"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func post(srv *workerServer, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	return rec
}

func TestWorker_LocalPublisherRoundTrip(t *testing.T) {
	srv, m := newTestWorker(t, &config.Config{}, nil)

	ts := httptest.NewServer(srv.server)
	defer ts.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := pubsub.NewLocalHTTPPublisher(ts.URL+"/push", logger)
	defer publisher.Close()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{90, 70} {
		err := publisher.PublishReportEvent(context.Background(), &service.ComplianceReportEvent{
			ReportID:     []string{"r1", "r2"}[i],
			StoreID:      "acme",
			Source:       constants.SourceAPI,
			OverallScore: score,
			GeneratedAt:  at.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	resp, err := http.Get(ts.URL + "/scores")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Stores []service.ComplianceReportEvent `json:"stores"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Stores, 1)
	assert.Equal(t, "r2", body.Stores[0].ReportID)
	assert.Equal(t, 70, body.Stores[0].OverallScore)

	series, err := testutil.GatherAndCount(m.Registry(), "acp_compliance_report_events_received_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `acp_compliance_report_events_received_total{source="api"} 2`)
	assert.Contains(t, rec.Body.String(), "acp_compliance_score_regressions_total 1")
}

func TestWorker_PushRejections(t *testing.T) {
	srv, _ := newTestWorker(t, &config.Config{}, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed envelope", body: `{"message":`, wantStatus: http.StatusBadRequest},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`, wantStatus: http.StatusBadRequest},
		{
			name:       "bad event json",
			body:       `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "event without report id is acknowledged",
			body:       `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"store_id":"acme"}`)) + `"}}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, post(srv, tt.body).Code)
		})
	}
}

func TestWorker_PushAuth(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{VerifyPushAuth: true}}

	var gotAudience string
	validator := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		switch token {
		case "good":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "wrong-issuer":
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		case "unverified":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil
		default:
			return nil, errors.New("signature mismatch")
		}
	}
	srv, _ := newTestWorker(t, cfg, validator)

	body := pushBody(t, &service.ComplianceReportEvent{ReportID: "r1", StoreID: "acme", Source: constants.SourceAPI})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer wrong-issuer", wantStatus: http.StatusUnauthorized},
		{name: "unverified email", header: "Bearer unverified", wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer good", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			assert.Equal(t, tt.wantStatus, post(srv, body, headers...).Code)
		})
	}

	assert.Equal(t, "http://example.com/push", gotAudience)
}

func TestWorker_HealthAndMetrics(t *testing.T) {
	srv, _ := newTestWorker(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}, nil)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acp_compliance_score_regressions_total 0")
}
