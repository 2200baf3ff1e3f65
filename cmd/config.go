package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	DB      DBConfig      `mapstructure:"db"`
	Storage StorageConfig `mapstructure:"storage"`
	Lock    LockConfig    `mapstructure:"lock"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Jobs    JobsConfig    `mapstructure:"jobs"`
	Log     LogConfig     `mapstructure:"log"`
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Host        string        `mapstructure:"host"`
	Port        string        `mapstructure:"port"`
	User        string        `mapstructure:"user"`
	Password    string        `mapstructure:"password"`
	Name        string        `mapstructure:"name"`
	SslMode     string        `mapstructure:"sslmode"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
}

// DSN renders the settings in the key=value form accepted by both lib/pq and pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type LockConfig struct {
	Backend     string        `mapstructure:"backend"`
	WaitTimeout time.Duration `mapstructure:"wait_timeout"`
	TTL         time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	// Brokers is a comma separated list. Empty means events are only logged.
	Brokers  string `mapstructure:"brokers"`
	Topic    string `mapstructure:"topic"`
	ClientID string `mapstructure:"client_id"`
	// DeliveryTimeout bounds one delivery attempt of a batch of domain events.
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
}

func (c KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type JobsConfig struct {
	OverdueSchedule string `mapstructure:"overdue_schedule"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads the configuration from environment variables on top of defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnvVariables(v); err != nil {
		return Config{}, fmt.Errorf("failed to bind env variables: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errList = append(errList, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}
	switch c.Lock.Backend {
	case LockBackendMemory:
	case LockBackendRedis:
		if c.Redis.Addr == "" {
			errList = append(errList, errors.New("REDIS_ADDR is required for the redis lock backend"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown LOCK_BACKEND %q", c.Lock.Backend))
	}
	if c.Lock.WaitTimeout <= 0 {
		errList = append(errList, errors.New("LOCK_WAIT_TIMEOUT must be positive"))
	}
	if c.Kafka.DeliveryTimeout <= 0 {
		errList = append(errList, errors.New("KAFKA_DELIVERY_TIMEOUT must be positive"))
	}
	return errors.Join(errList...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "dentallab")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.lock_timeout", 2*time.Second)

	v.SetDefault("storage.driver", StorageDriverPostgres)

	v.SetDefault("lock.backend", LockBackendMemory)
	v.SetDefault("lock.wait_timeout", 2*time.Second)
	v.SetDefault("lock.ttl", 30*time.Second)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "dentallab.events")
	v.SetDefault("kafka.client_id", "dentallab")
	v.SetDefault("kafka.delivery_timeout", 10*time.Second)

	v.SetDefault("jwt.secret", "")

	v.SetDefault("jobs.overdue_schedule", "0 6 * * *")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func bindEnvVariables(v *viper.Viper) error {
	bindings := map[string]string{
		"http.port":             "HTTP_PORT",
		"http.shutdown_timeout": "HTTP_SHUTDOWN_TIMEOUT",

		"db.host":         "DB_HOST",
		"db.port":         "DB_PORT",
		"db.user":         "DB_USER",
		"db.password":     "DB_PASSWORD",
		"db.name":         "DB_NAME",
		"db.sslmode":      "DB_SSLMODE",
		"db.lock_timeout": "DB_LOCK_TIMEOUT",

		"storage.driver": "STORAGE_DRIVER",

		"lock.backend":      "LOCK_BACKEND",
		"lock.wait_timeout": "LOCK_WAIT_TIMEOUT",
		"lock.ttl":          "LOCK_TTL",

		"redis.addr":     "REDIS_ADDR",
		"redis.password": "REDIS_PASSWORD",
		"redis.db":       "REDIS_DB",

		"kafka.brokers":   "KAFKA_BROKERS",
		"kafka.topic":     "KAFKA_TOPIC",
		"kafka.client_id": "KAFKA_CLIENT_ID",

		"kafka.delivery_timeout": "KAFKA_DELIVERY_TIMEOUT",

		"jwt.secret": "JWT_SECRET",

		"jobs.overdue_schedule": "OVERDUE_SCAN_SCHEDULE",

		"log.level":  "LOG_LEVEL",
		"log.format": "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}
