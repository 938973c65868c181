package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Kafka      KafkaConfig
	S3         S3Config
	Scheduler  SchedulerConfig
	Assistance AssistanceConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig verifies bearer tokens issued by the identity provider.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

// KafkaConfig leaves event publishing to Kafka off when no broker is set.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"casi.assignment-events"`
	MaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"3"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"10s"`
	QueueSize    int           `envconfig:"EVENT_QUEUE_SIZE" default:"1024"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// S3Config leaves bucket imports off when no bucket is set.
type S3Config struct {
	Bucket   string `envconfig:"INVENTORY_BUCKET"`
	Prefix   string `envconfig:"INVENTORY_PREFIX" default:""`
	Endpoint string `envconfig:"S3_ENDPOINT" default:""`
}

func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

type SchedulerConfig struct {
	ExpiryInterval time.Duration `envconfig:"SCHEDULER_EXPIRY_INTERVAL" default:"24h"`
	Enabled        bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
}

type AssistanceConfig struct {
	// PROVIDER:SERVICE_CODE pairs
	Services       []string `envconfig:"ASSISTANCE_SERVICES" default:"DUOLINGO:DUOLINGO_TEST_PROCTORED,DUOLINGO:DUOLINGO_TEST_NON_PROCTORED"`
	ImportTimeZone string   `envconfig:"ASSISTANCE_IMPORT_TIMEZONE" default:"UTC"`
}

// ServicePair is one entry of AssistanceConfig.Services.
type ServicePair struct {
	Provider    string
	ServiceCode string
}

func (c AssistanceConfig) Pairs() ([]ServicePair, error) {
	pairs := make([]ServicePair, 0, len(c.Services))
	for _, raw := range c.Services {
		provider, serviceCode, ok := strings.Cut(strings.TrimSpace(raw), ":")
		if !ok || strings.TrimSpace(provider) == "" || strings.TrimSpace(serviceCode) == "" {
			return nil, fmt.Errorf("invalid ASSISTANCE_SERVICES entry %q: want PROVIDER:SERVICE_CODE", raw)
		}
		pairs = append(pairs, ServicePair{Provider: strings.TrimSpace(provider), ServiceCode: strings.TrimSpace(serviceCode)})
	}
	return pairs, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildMigrateDSN is BuildDSN with the scheme golang-migrate's pgx/v5 driver registers.
func (c *DBConfig) BuildMigrateDSN() string {
	return "pgx5" + strings.TrimPrefix(c.BuildDSN(), "postgres")
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-jwt-signing",
		},
		Kafka: KafkaConfig{
			Topic:     "casi.assignment-events",
			QueueSize: 64,
		},
		Scheduler: SchedulerConfig{
			ExpiryInterval: time.Hour,
			Enabled:        false,
		},
		Assistance: AssistanceConfig{
			Services:       []string{"DUOLINGO:DUOLINGO_TEST_PROCTORED", "DUOLINGO:DUOLINGO_TEST_NON_PROCTORED"},
			ImportTimeZone: "UTC",
		},
	}
}
