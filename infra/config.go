package infra

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env  string `env:"ENV" env-default:"dev"`
	Port string `env:"PORT" env-default:"8080"`

	Database DatabaseConfig
	Auth     AuthConfig

	AutoMigrate          bool `env:"AUTO_MIGRATE" env-default:"true"`
	RolesReseedOnMissing bool `env:"ROLES_RESEED_ON_MISSING" env-default:"false"`

	LogLevel           string   `env:"LOG_LEVEL" env-default:"info"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" env-default:"100"`
}

// DatabaseConfig DB_NAMEが設定されていればPostgreSQL、それ以外はSQLiteを使用する
type DatabaseConfig struct {
	Name       string `env:"DB_NAME"`
	Host       string `env:"DB_HOST" env-default:"localhost"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	User       string `env:"DB_USER" env-default:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"worker.db"`
}

type AuthConfig struct {
	SecretKey     string `env:"SECRET_KEY"`
	AnonymousRole string `env:"AUTH_ANONYMOUS_ROLE" env-default:"USER"`
}

// LoadConfig .envファイル（任意）と環境変数から設定を読み込む
func LoadConfig() (*Config, error) {
	Initialize()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func (c *Config) UsePostgres() bool {
	return c.Database.Name != ""
}

// PostgresDSN 本番環境ではsslmode=require、それ以外はsslmode=disable
func (c *Config) PostgresDSN() string {
	sslmode := "disable"
	if c.IsProd() {
		sslmode = "require"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.Port,
		sslmode,
	)
}

func (c *Config) normalize() {
	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, origin := range c.CORSAllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSAllowedOrigins = origins
	c.Auth.AnonymousRole = strings.ToUpper(strings.TrimSpace(c.Auth.AnonymousRole))
}
