package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	Match MatchConfig
	HTTP  HTTPConfig
	SMTP  SMTPConfig
	S3    S3Config
	GeoIP GeoIPConfig
}

type JWTConfig struct {
	AccessSecret  string        `env:"JWT_ACCESS_SECRET"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTTL     time.Duration `env:"JWT_ACCESS_TTL,  default=30m"`
	RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL, default=168h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dating"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type MatchConfig struct {
	// LikesPerWindow is the maximum number of likes one client may author
	// inside the trailing Window.
	LikesPerWindow int64         `env:"LIKES_PER_WINDOW, default=30"`
	Window         time.Duration `env:"LIKES_WINDOW,     default=24h"`
	// NotifyWorkers sizes the notification dispatcher pool.
	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`
}

type HTTPConfig struct {
	// RateRPS and RateBurst configure the per-IP request limiter.
	RateRPS   float64 `env:"HTTP_RATE_RPS,   default=10"`
	RateBurst int     `env:"HTTP_RATE_BURST, default=20"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=25"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@sparkmeet.io"`
}

type S3Config struct {
	Endpoint      string `env:"S3_ENDPOINT"`
	Region        string `env:"S3_REGION, default=auto"`
	AccessKeyID   string `env:"S3_ACCESS_KEY_ID"`
	SecretKey     string `env:"S3_SECRET_ACCESS_KEY"`
	Bucket        string `env:"S3_BUCKET, default=avatars"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
	WatermarkPath string `env:"WATERMARK_PATH"`
}

type GeoIPConfig struct {
	BaseURL  string        `env:"GEOIP_BASE_URL"`
	Timeout  time.Duration `env:"GEOIP_TIMEOUT,   default=5s"`
	CacheTTL time.Duration `env:"GEOIP_CACHE_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
