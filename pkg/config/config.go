package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App              AppConfig
	DB               DBConfig
	Redis            RedisConfig
	Password         PasswordConfig
	ContactRateLimit ContactRateLimitConfig
	PDF              PDFConfig
	FeatureFlags     FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// The in-memory store never opens a database connection, so running
	// without any database variables is a supported setup there.
	if !cfg.FeatureFlags.UseMemoryStore {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CAFECANVAS_APP_ENV" required:"true"`
	Port         string `envconfig:"CAFECANVAS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CAFECANVAS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAFECANVAS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CAFECANVAS_DB_DSN"`
	Driver string `envconfig:"CAFECANVAS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CAFECANVAS_DB_HOST"`
	LegacyPort     int    `envconfig:"CAFECANVAS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CAFECANVAS_DB_USER"`
	LegacyPassword string `envconfig:"CAFECANVAS_DB_PASSWORD"`
	LegacyName     string `envconfig:"CAFECANVAS_DB_NAME"`
	LegacySSLMode  string `envconfig:"CAFECANVAS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAFECANVAS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAFECANVAS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAFECANVAS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAFECANVAS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	// URL is optional; when empty the contact-form rate limiter is disabled.
	URL          string        `envconfig:"CAFECANVAS_REDIS_URL"`
	Address      string        `envconfig:"CAFECANVAS_REDIS_ADDR"`
	Password     string        `envconfig:"CAFECANVAS_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAFECANVAS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAFECANVAS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAFECANVAS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAFECANVAS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAFECANVAS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAFECANVAS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CAFECANVAS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CAFECANVAS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CAFECANVAS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CAFECANVAS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CAFECANVAS_ARGON_KEY_LEN" default:"32"`
}

type ContactRateLimitConfig struct {
	Window     time.Duration `envconfig:"CAFECANVAS_CONTACT_RATE_LIMIT_WINDOW" default:"5m"`
	IPLimit    int           `envconfig:"CAFECANVAS_CONTACT_RATE_LIMIT_IP_LIMIT" default:"20"`
	EmailLimit int           `envconfig:"CAFECANVAS_CONTACT_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
}

type PDFConfig struct {
	// ChromePath overrides the headless browser executable lookup.
	ChromePath    string        `envconfig:"CAFECANVAS_CHROME_PATH"`
	RenderTimeout time.Duration `envconfig:"CAFECANVAS_PDF_RENDER_TIMEOUT" default:"45s"`
}

type FeatureFlagsConfig struct {
	UseMemoryStore bool `envconfig:"CAFECANVAS_USE_MEMORY_STORE" default:"false"`
	AutoMigrate    bool `envconfig:"CAFECANVAS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
