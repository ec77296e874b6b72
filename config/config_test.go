package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, ":8082", cfg.Server.GRPCPort)
	assert.False(t, cfg.Postgres.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 21, cfg.Notification.SummaryHour)
	assert.Equal(t, 0, cfg.Notification.SummaryMinute)
	assert.Equal(t, "+91 9999999999", cfg.Notification.OperatorPhone)
	assert.Equal(t, 33.0, cfg.Forecast.AmbientIntensity)
	assert.Equal(t, "600-M", cfg.Server.RateLimit)
	assert.Equal(t, "omnipos-juicebar-service", cfg.Tracing.ServiceName)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("NOTIFY_SUMMARY_HOUR", "20")
	t.Setenv("FORECAST_AMBIENT_INTENSITY", "27.5")
	t.Setenv("HTTP_RATE_LIMIT", "")

	cfg := LoadEnv()

	assert.Equal(t, ":9090", cfg.Server.HTTPPort)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 20, cfg.Notification.SummaryHour)
	assert.Equal(t, 27.5, cfg.Forecast.AmbientIntensity)
	assert.Empty(t, cfg.Server.RateLimit)
}

func TestLoadEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("NOTIFY_SUMMARY_HOUR", "nine")
	t.Setenv("SNAPSHOT_ENABLED", "maybe")

	cfg := LoadEnv()

	assert.Equal(t, 21, cfg.Notification.SummaryHour)
	assert.False(t, cfg.Postgres.Enabled)
}
