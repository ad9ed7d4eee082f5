package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"compliance": map[string]any{
			"maxProducts":      5000,
			"batchConcurrency": 4,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "COMPLIANCE_MAXPRODUCTS", want: "compliance.maxProducts"},
		{envKey: "COMPLIANCE_BATCHCONCURRENCY", want: "compliance.batchConcurrency"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	body := []byte("http:\n  port: 9000\n  timeouts:\n    readTimeout: 3s\ncompliance:\n  maxProducts: 100\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), body, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("COMPLIANCE_MAXPRODUCTS", "25")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Compliance)
	assert.Equal(t, 25, cfg.Compliance.MaxProducts)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, &ComplianceConfig{
		MaxProducts:        defaultMaxProducts,
		MaxRecommendations: defaultMaxRecommendations,
		MaxBatchStores:     defaultMaxBatchStores,
		BatchConcurrency:   defaultBatchConcurrency,
	}, cfg.Compliance)
	assert.NotNil(t, cfg.PubSub)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "acp", cfg.Metrics.Namespace)
	assert.Equal(t, defaultRegressionThreshold, cfg.Worker.RegressionThreshold)
}
