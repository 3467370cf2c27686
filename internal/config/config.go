package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config agrupa toda la configuración de la app.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"`
	SwaggerEnabled  bool          `yaml:"swagger_enabled"`
}

// StorageConfig elige el backend del record store.
type StorageConfig struct {
	Driver     string `yaml:"driver"` // file|memory|postgres|sqlite
	DataDir    string `yaml:"data_dir"`
	DSN        string `yaml:"dsn"`
	SQLitePath string `yaml:"sqlite_path"`
}

type AuthConfig struct {
	SessionStore    string        `yaml:"session_store"` // memory|redis
	SessionTTL      time.Duration `yaml:"session_ttl"`   // 0 = dura lo que el proceso
	DevMode         bool          `yaml:"dev_mode"`      // habilita X-Debug-User-ID
	LoginRatePerSec float64       `yaml:"login_rate_per_sec"`
	LoginBurst      int           `yaml:"login_burst"`
	Redis           RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
	App    string `yaml:"app"`
}

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

// Defaults devuelve la configuración sin env ni archivo.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
			MetricsEnabled:  true,
			SwaggerEnabled:  true,
		},
		Storage: StorageConfig{
			Driver:     DriverFile,
			DataDir:    "./data",
			SQLitePath: "./data/medimanager.db",
		},
		Auth: AuthConfig{
			SessionStore:    SessionsMemory,
			LoginRatePerSec: 1,
			LoginBurst:      5,
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "medimanager",
		},
	}
}

// Load arma la configuración en capas: defaults, archivo YAML (MEDIMANAGER_CONFIG),
// y por último variables de entorno. Un .env en el directorio actual se carga si existe.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env es opcional

	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv("MEDIMANAGER_CONFIG")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var errs []error

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout, &errs)
	cfg.Server.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout, &errs)
	cfg.Server.ShutdownTimeout = getDurationEnv("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout, &errs)
	cfg.Server.AllowedOrigins = getSliceEnv("CORS_ALLOWED_ORIGINS", cfg.Server.AllowedOrigins)
	cfg.Server.MetricsEnabled = getBoolEnv("METRICS_ENABLED", cfg.Server.MetricsEnabled, &errs)
	cfg.Server.SwaggerEnabled = getBoolEnv("SWAGGER_ENABLED", cfg.Server.SwaggerEnabled, &errs)

	cfg.Storage.Driver = strings.ToLower(getEnv("STORAGE_DRIVER", cfg.Storage.Driver))
	cfg.Storage.DataDir = getEnv("DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.DSN = getEnv("DB_DSN", cfg.Storage.DSN)
	cfg.Storage.SQLitePath = getEnv("SQLITE_PATH", cfg.Storage.SQLitePath)

	cfg.Auth.SessionStore = strings.ToLower(getEnv("SESSION_STORE", cfg.Auth.SessionStore))
	cfg.Auth.SessionTTL = getDurationEnv("SESSION_TTL", cfg.Auth.SessionTTL, &errs)
	cfg.Auth.DevMode = getBoolEnv("AUTH_DEV_MODE", cfg.Auth.DevMode, &errs)
	cfg.Auth.LoginRatePerSec = getFloatEnv("LOGIN_RATE_PER_SEC", cfg.Auth.LoginRatePerSec, &errs)
	cfg.Auth.LoginBurst = getIntEnv("LOGIN_BURST", cfg.Auth.LoginBurst, &errs)
	cfg.Auth.Redis.Addr = getEnv("REDIS_ADDR", cfg.Auth.Redis.Addr)
	cfg.Auth.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Auth.Redis.Password)
	cfg.Auth.Redis.DB = getIntEnv("REDIS_DB", cfg.Auth.Redis.DB, &errs)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.App = getEnv("APP_NAME", cfg.Logging.App)

	return errors.Join(errs...)
}

// Validate revisa combinaciones que no tienen sentido antes de arrancar.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, errors.New("server port is required"))
	} else if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server port %q is not a number", c.Server.Port))
	}

	switch c.Storage.Driver {
	case DriverFile:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			errs = append(errs, errors.New("DATA_DIR is required for the file driver"))
		}
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			errs = append(errs, errors.New("DB_DSN is required for the postgres driver"))
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	switch c.Auth.SessionStore {
	case SessionsMemory:
	case SessionsRedis:
		if strings.TrimSpace(c.Auth.Redis.Addr) == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis session store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown session store %q", c.Auth.SessionStore))
	}

	if c.Auth.SessionTTL < 0 {
		errs = append(errs, errors.New("SESSION_TTL must not be negative"))
	}

	return errors.Join(errs...)
}

// Addr devuelve ":<port>" para http.Server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getIntEnv(key string, fallback int, errs *[]error) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return n
}

func getFloatEnv(key string, fallback float64, errs *[]error) float64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return f
}

func getBoolEnv(key string, fallback bool, errs *[]error) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return b
}

func getDurationEnv(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return d
}

func getSliceEnv(key string, fallback []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
