package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	App        AppConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Tracking   TrackingConfig
	Redirect   RedirectConfig
	Validation ValidationConfig
	Pprof      PprofConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"deeplinker"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
	TTLSeconds  int `env:"CACHE_TTL_SECONDS" envDefault:"60"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type TrackingConfig struct {
	Enabled        bool `env:"TRACKING_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"TRACKING_BUFFER_SIZE" envDefault:"1024"`
	FlushInterval  int  `env:"TRACKING_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"TRACKING_FLUSH_THRESHOLD" envDefault:"256"`
}

// RedirectConfig holds the operator-tunable parameters of the redirect
// interstitial. All tunables are injected into the session at creation;
// nothing on the redirect path reads ambient state.
type RedirectConfig struct {
	CountdownSeconds int  `env:"REDIRECT_COUNTDOWN_SECONDS" envDefault:"5"`
	ShowSkipButton   bool `env:"REDIRECT_SHOW_SKIP_BUTTON" envDefault:"true"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	AllowPrivateIPs    bool   `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
	MaxSlugLength      int    `env:"VALIDATION_MAX_SLUG_LENGTH" envDefault:"32"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
