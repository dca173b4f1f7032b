package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TimeZone          *time.Location
	DeliveryStartHour int
	DeliveryEndHour   int

	KafkaBrokers      []string
	KafkaMailTopic    string
	KafkaWriteTimeout time.Duration

	// RedisAddr is empty when the order list cache is disabled.
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	OrderListCacheTTL time.Duration

	NotificationMaxAttempts int
	RetrySchedule           string
	RetryBatchSize          int
}

// LoadConfig reads the configuration from the environment. Values from a
// .env file in the working directory are used for keys the environment does
// not set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	r := envReader{}
	cfg := Config{
		HTTPPort:        r.string("HTTP_PORT", "8080"),
		RequestTimeout:  r.duration("HTTP_REQUEST_TIMEOUT", 10*time.Second),
		ShutdownTimeout: r.duration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),

		DBHost:     r.string("DB_HOST", "localhost"),
		DBPort:     r.string("DB_PORT", "5432"),
		DBUser:     r.string("DB_USER", "postgres"),
		DBPassword: r.string("DB_PASSWORD", ""),
		DBName:     r.string("DB_NAME", "fastfeet"),
		DBSslMode:  r.string("DB_SSLMODE", "disable"),

		TimeZone:          r.location("TZ", time.Local),
		DeliveryStartHour: r.int("DELIVERY_START_HOUR", kernel.DefaultWindowStartHour),
		DeliveryEndHour:   r.int("DELIVERY_END_HOUR", kernel.DefaultWindowEndHour),

		KafkaBrokers:      r.list("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaMailTopic:    r.string("KAFKA_MAIL_TOPIC", "fastfeet.mail"),
		KafkaWriteTimeout: r.duration("KAFKA_WRITE_TIMEOUT", 5*time.Second),

		RedisAddr:         r.string("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     r.string("REDIS_PASSWORD", ""),
		RedisDB:           r.int("REDIS_DB", 0),
		OrderListCacheTTL: r.duration("ORDER_LIST_CACHE_TTL", time.Minute),

		NotificationMaxAttempts: r.int("NOTIFICATION_MAX_ATTEMPTS", commands.DefaultMaxDeliveryAttempts),
		RetrySchedule:           r.string("NOTIFICATION_RETRY_SCHEDULE", jobs.DefaultRetrySchedule),
		RetryBatchSize:          r.int("NOTIFICATION_RETRY_BATCH_SIZE", commands.DefaultRetryBatchSize),
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string in key/value form, which both
// lib/pq and pgx accept.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// DeliveryWindow returns the configured start window.
func (c Config) DeliveryWindow() (kernel.DeliveryWindow, error) {
	return kernel.NewDeliveryWindow(c.DeliveryStartHour, c.DeliveryEndHour)
}

// envReader collects parse errors so every bad key is reported at once.
// A key set to the empty string keeps the empty value; only unset keys fall
// back to their default.
type envReader struct {
	errs []error
}

func (r *envReader) string(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *envReader) int(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func (r *envReader) location(key string, def *time.Location) *time.Location {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	loc, err := time.LoadLocation(strings.TrimSpace(v))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return loc
}

func (r *envReader) list(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
