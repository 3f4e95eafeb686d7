package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := Load()
	require.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Nil(t, cfg.KafkaBrokers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/shop?sslmode=disable")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg := Load()
	require.Equal(t, "postgres://app:secret@db:5432/shop?sslmode=disable", cfg.DatabaseURL)
	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}

func TestEnvIntDefaultIgnoresGarbage(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	require.Equal(t, 8080, EnvIntDefault("SERVER_PORT", 8080))
}
