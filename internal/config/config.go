package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultDatabaseDSN = "foodtracker.db"
	defaultAuthSecret  = "dev-secret-key"
	defaultBaseURL     = "localhost:3000"
	defaultPort        = "3000"
	defaultTokenTTL    = 7 * 24 * time.Hour
)

type Config struct {
	// Server-side settings
	DatabaseDSN      string        `env:"DATABASE_URI"`
	AuthSecret       string        `env:"JWT_SECRET"`
	TokenTTL         time.Duration `env:"TOKEN_TTL"`
	StrictTokenIssue bool          `env:"STRICT_TOKEN_ISSUE"`
	CORSOrigins      []string      `env:"CORS_ORIGINS" envSeparator:","`
	LogFormat        string        `env:"LOG_FORMAT"`
	Port             string        `env:"PORT"`
	ListenAddr       string        `env:"-"` // ":" + Port, слушаем на всех интерфейсах

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

var (
	hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	portRe     = regexp.MustCompile(`^\d{1,5}$`)
)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (файл SQLite или DSN Postgres)")
	flag.StringVar(&cfg.AuthSecret, "jwt-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена")
	flag.BoolVar(&cfg.StrictTokenIssue, "strict-token", cfg.StrictTokenIssue, "выдавать токен только зарегистрированным email")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "порт, который слушает сервер")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the Food Tracker server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	cfg.CORSOrigins = cleanOrigins(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat != "json" {
		cfg.LogFormat = "console"
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if !portRe.MatchString(cfg.Port) {
		cfg.Port = defaultPort
	}
	cfg.ListenAddr = ":" + cfg.Port

	// BaseURL: только "address:port" (без схемы и пути), иначе дефолт
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
}

func cleanOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// defaultTokenFile - <user config dir>/FoodTracker/auth_token, либо домашний каталог.
func defaultTokenFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "FoodTracker", "auth_token")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".foodtracker_token")
}
