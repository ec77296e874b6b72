package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server       ServerConfig
	Logger       LoggerConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Notification NotificationConfig
	Forecast     ForecastConfig
	Tracing      TracingConfig
}

type ServerConfig struct {
	AppEnv    string
	HTTPPort  string
	GRPCPort  string
	RateLimit string // limiter notation, empty disables
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// PostgresConfig is only used by the snapshot collaborator; the engine itself is in-memory.
type PostgresConfig struct {
	Enabled         bool
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

type NotificationConfig struct {
	OperatorPhone string
	SummaryHour   int
	SummaryMinute int
	Timezone      string
}

type ForecastConfig struct {
	AmbientIntensity float64
}

type TracingConfig struct {
	ServiceName string
	SampleRatio float64
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:    getEnv("APP_ENV", "dev"),
			HTTPPort:  getEnv("HTTP_PORT", ":8080"),
			GRPCPort:  getEnv("GRPC_PORT", ":8082"),
			RateLimit: getEnv("HTTP_RATE_LIMIT", "600-M"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Enabled:         getEnvBool("SNAPSHOT_ENABLED", false),
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_juicebar"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_LOCK_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_SALE_REQUESTS", "pos.sale-requests"),
			GroupID: getEnv("KAFKA_GROUP_SALES", "juicebar-sales"),
		},
		Notification: NotificationConfig{
			OperatorPhone: getEnv("NOTIFY_OPERATOR_PHONE", "+91 9999999999"),
			SummaryHour:   getEnvInt("NOTIFY_SUMMARY_HOUR", 21),
			SummaryMinute: getEnvInt("NOTIFY_SUMMARY_MINUTE", 0),
			Timezone:      getEnv("NOTIFY_TIMEZONE", ""),
		},
		Forecast: ForecastConfig{
			AmbientIntensity: getEnvFloat("FORECAST_AMBIENT_INTENSITY", 33),
		},
		Tracing: TracingConfig{
			ServiceName: getEnv("OTEL_SERVICE_NAME", "omnipos-juicebar-service"),
			SampleRatio: getEnvFloat("OTEL_TRACES_SAMPLE_RATIO", 1),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
