package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the fully resolved application configuration.
type Config struct {
	Server      ServerConfig
	Storage     StorageConfig
	JWT         JWTConfig
	Credentials CredentialsConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig selects the repository backend: "postgres" or "memory".
type StorageConfig struct {
	Driver string
}

type JWTConfig struct {
	SecretKey   string
	ExpiryHours int
}

// CredentialsConfig controls password hashing. LegacySalt switches to the
// deterministic fixed-salt digests used by existing records.
type CredentialsConfig struct {
	LegacySalt bool
	Iterations int
}

type RateLimitConfig struct {
	LoginMax    int
	LoginWindow time.Duration
}

type LogConfig struct {
	Level string
	JSON  bool
}

var envBindings = map[string]string{
	"server.port":                "PORT",
	"storage.driver":             "STORAGE_DRIVER",
	"database.host":              "DATABASE_HOST",
	"database.port":              "DATABASE_PORT",
	"database.user":              "DATABASE_USER",
	"database.password":          "DATABASE_PASSWORD",
	"database.name":              "DATABASE_NAME",
	"database.ssl_mode":          "DATABASE_SSL_MODE",
	"database.max_open_conns":    "DATABASE_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DATABASE_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DATABASE_CONN_MAX_LIFETIME",
	"redis.host":                 "REDIS_HOST",
	"redis.port":                 "REDIS_PORT",
	"redis.password":             "REDIS_PASSWORD",
	"redis.db":                   "REDIS_DB",
	"jwt.secret_key":             "JWT_SECRET_KEY",
	"jwt.expiry_hours":           "JWT_EXPIRY_HOURS",
	"credentials.legacy_salt":    "CREDENTIALS_LEGACY_SALT",
	"credentials.iterations":     "CREDENTIALS_ITERATIONS",
	"ratelimit.login_max":        "RATELIMIT_LOGIN_MAX",
	"ratelimit.login_window":     "RATELIMIT_LOGIN_WINDOW",
	"log.level":                  "LOG_LEVEL",
	"log.format":                 "LOG_FORMAT",
}

// Load reads .env (if present) and the environment into viper and returns
// the typed configuration. Database and Redis settings stay in viper and are
// read by the database package.
func Load() *Config {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	viper.AutomaticEnv()
	for key, env := range envBindings {
		viper.BindEnv(key, env)
	}
	SetDefaults()

	logFormat := viper.GetString("log.format")

	return &Config{
		Server: ServerConfig{
			Port:            viper.GetString("server.port"),
			ReadTimeout:     viper.GetDuration("server.read_timeout"),
			WriteTimeout:    viper.GetDuration("server.write_timeout"),
			ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("storage.driver"),
		},
		JWT: JWTConfig{
			SecretKey:   viper.GetString("jwt.secret_key"),
			ExpiryHours: viper.GetInt("jwt.expiry_hours"),
		},
		Credentials: CredentialsConfig{
			LegacySalt: viper.GetBool("credentials.legacy_salt"),
			Iterations: viper.GetInt("credentials.iterations"),
		},
		RateLimit: RateLimitConfig{
			LoginMax:    viper.GetInt("ratelimit.login_max"),
			LoginWindow: viper.GetDuration("ratelimit.login_window"),
		},
		Log: LogConfig{
			Level: viper.GetString("log.level"),
			JSON:  logFormat == "json",
		},
	}
}

// SetDefaults registers every default value. Tests call it directly.
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("server.shutdown_timeout", 30*time.Second)

	viper.SetDefault("storage.driver", "postgres")

	viper.SetDefault("jwt.secret_key", "change-me")
	viper.SetDefault("jwt.expiry_hours", 24)

	viper.SetDefault("credentials.legacy_salt", false)
	viper.SetDefault("credentials.iterations", 100000)

	viper.SetDefault("ratelimit.login_max", 10)
	viper.SetDefault("ratelimit.login_window", time.Minute)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}
