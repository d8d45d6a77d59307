package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"routing": map[string]any{
			"appKey":        "",
			"ratePerSecond": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ROUTING_APPKEY", want: "routing.appKey"},
		{envKey: "ROUTING_RATEPERSECOND", want: "routing.ratePerSecond"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
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

func TestRoutingConfig_ApplyDefaults(t *testing.T) {
	cfg := &RoutingConfig{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultRoutingBaseURL, cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.InDelta(t, float64(defaultRoutingRatePerSecond), cfg.RatePerSecond, 0)
	assert.Equal(t, defaultRoutingBurst, cfg.Burst)
	assert.Equal(t, uint32(5), cfg.BreakerFailureThreshold)
}

func TestRoutingConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &RoutingConfig{
		BaseURL:       "http://localhost:9999",
		Timeout:       2 * time.Second,
		RatePerSecond: 1,
		Burst:         3,
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.InDelta(t, 1.0, cfg.RatePerSecond, 0)
	assert.Equal(t, 3, cfg.Burst)
}
