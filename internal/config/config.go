package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port    string `yaml:"port" env:"PORT" env-default:"8080"`
	Verbose bool   `yaml:"verbose" env:"CONNECTZ_VERBOSE" env-default:"false"`

	DBDriver             string `yaml:"db_driver" env:"DB_DRIVER" env-default:"pgx"`
	DatabaseURL          string `yaml:"database_url" env:"DATABASE_URL"`
	DBMaxOpenConns       int    `yaml:"db_max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	DBMaxIdleConns       int    `yaml:"db_max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"25"`
	DBConnMaxLifetimeMin int    `yaml:"db_conn_max_lifetime_minutes" env:"DB_CONN_MAX_LIFETIME_MINUTES" env-default:"5"`
	LedgerRetentionDays  int    `yaml:"ledger_retention_days" env:"LEDGER_RETENTION_DAYS" env-default:"30"`

	RedisURL        string `yaml:"redis_url" env:"REDIS_URL"`
	RedisPassword   string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes" env:"CACHE_TTL_MINUTES" env-default:"1440"`

	KafkaEnabled bool   `yaml:"kafka_enabled" env:"KAFKA_ENABLED" env-default:"false"`
	KafkaBroker  string `yaml:"kafka_broker" env:"KAFKA_BROKER" env-default:"localhost:9092"`
	KafkaTopic   string `yaml:"kafka_topic" env:"KAFKA_TOPIC" env-default:"replay-verdicts"`

	JWTSecret      string   `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTLHours  int      `yaml:"token_ttl_hours" env:"TOKEN_TTL_HOURS" env-default:"72"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:","`

	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"1048576"`
}

// LoadConfig reads CONFIG_PATH when it is set (environment values still win)
// and falls back to the environment alone otherwise.
func LoadConfig() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.AllowedOrigins = origins

	return &cfg, nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.DBConnMaxLifetimeMin) * time.Minute
}
