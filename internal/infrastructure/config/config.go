package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string   `env:"PORT,            default=8080"`
	Env            string   `env:"ENV,             default=development"`
	LogLevel       string   `env:"LOG_LEVEL,       default=info"`
	APIPrefix      string   `env:"API_PREFIX,      default=/api"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
	SeedOnStart    bool     `env:"SEED_ON_START,   default=true"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Contact    ContactConfig
	Analytics  AnalyticsConfig
	Resume     ResumeConfig
	Cloudinary CloudinaryConfig
	Kafka      KafkaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	JWTTTL            time.Duration `env:"JWT_TTL, default=24h"`
	AdminToken        string        `env:"ADMIN_TOKEN"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
}

type ContactConfig struct {
	RateLimit  int           `env:"CONTACT_RATE_LIMIT,  default=5"`
	RateWindow time.Duration `env:"CONTACT_RATE_WINDOW, default=1h"`
}

type AnalyticsConfig struct {
	Workers int `env:"ANALYTICS_WORKERS, default=4"`
}

type ResumeConfig struct {
	MaxBytes int64 `env:"RESUME_MAX_BYTES, default=5242880"`
}

type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER, default=portfolio"`
}

type KafkaConfig struct {
	Brokers      []string `env:"KAFKA_BROKERS"`
	ContactTopic string   `env:"KAFKA_CONTACT_TOPIC, default=portfolio.contact"`
}

// IsDevelopment reports whether the service runs locally.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Contact.RateLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", c.Contact.RateLimit)
	}
	if c.Contact.RateWindow <= 0 {
		return fmt.Errorf("CONTACT_RATE_WINDOW must be positive, got %s", c.Contact.RateWindow)
	}
	if c.Resume.MaxBytes <= 0 {
		return fmt.Errorf("RESUME_MAX_BYTES must be positive, got %d", c.Resume.MaxBytes)
	}
	for _, p := range c.TrustedProxies {
		if !validProxy(strings.TrimSpace(p)) {
			return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
		}
	}
	if c.Auth.AdminPasswordHash != "" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}
	return nil
}

func validProxy(s string) bool {
	if net.ParseIP(s) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(s)
	return err == nil
}
