package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, authentication, the image provider and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// EnablePprof mounts net/http/pprof under /debug/pprof/
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
		// AllowedOrigins lists the origins allowed by CORS. "*" allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// MaxUploadBytes caps the size of an uploaded profile image
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"5242880" yaml:"maxUploadBytes"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"maike" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the connection used for the token denylist
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// KeyPrefix namespaces denylist keys
		KeyPrefix string `env:"REDIS_KEY_PREFIX" env-default:"maike:revoked:" yaml:"keyPrefix"`
	} `yaml:"redis"`

	// JWT configures session tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is how long an issued token stays valid
		TTL time.Duration `env:"JWT_TTL" env-default:"1h" yaml:"ttl"`
		// CookieName is the cookie checked when no Authorization header is sent
		CookieName string `env:"JWT_COOKIE_NAME" env-default:"jwt" yaml:"cookieName"`
	} `yaml:"jwt"`

	// RateLimit throttles login and registration per client IP
	RateLimit struct {
		// RPS is the sustained number of requests per second allowed per IP
		RPS float64 `env:"RATE_LIMIT_RPS" env-default:"1" yaml:"rps"`
		// Burst is the number of requests allowed at once per IP
		Burst int `env:"RATE_LIMIT_BURST" env-default:"5" yaml:"burst"`
		// IdleTTL evicts limiters of clients that stopped sending requests
		IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" env-default:"10m" yaml:"idleTTL"`
	} `yaml:"rateLimit"`

	// ImageGen configures the external image provider and generation jobs
	ImageGen struct {
		// BaseURL is the provider's API root, without the /v1 suffix
		BaseURL string `env:"IMAGEGEN_BASE_URL" env-default:"https://api.openai.com" yaml:"baseURL"`
		// APIKey is sent as a bearer token to the provider
		APIKey string `env:"IMAGEGEN_API_KEY" yaml:"apiKey"`
		// Model is the provider model name
		Model string `env:"IMAGEGEN_MODEL" env-default:"dall-e-2" yaml:"model"`
		// Size is the requested image size, e.g. 512x512
		Size string `env:"IMAGEGEN_SIZE" env-default:"512x512" yaml:"size"`
		// ImagesPerList is how many images are requested per generation
		ImagesPerList int `env:"IMAGEGEN_IMAGES_PER_LIST" env-default:"4" yaml:"imagesPerList"`
		// Timeout bounds a single provider call
		Timeout time.Duration `env:"IMAGEGEN_TIMEOUT" env-default:"1m" yaml:"timeout"`
		// MaxAttempts is the maximum number of job attempts before a list is marked failed
		MaxAttempts int `env:"IMAGEGEN_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Workers is the number of generation jobs processed concurrently
		Workers int `env:"IMAGEGEN_WORKERS" env-default:"10" yaml:"workers"`
		// BreakerFailures opens the circuit breaker after this many consecutive failures
		BreakerFailures uint32 `env:"IMAGEGEN_BREAKER_FAILURES" env-default:"5" yaml:"breakerFailures"`
		// BreakerTimeout is how long the breaker stays open before probing again
		BreakerTimeout time.Duration `env:"IMAGEGEN_BREAKER_TIMEOUT" env-default:"30s" yaml:"breakerTimeout"`
	} `yaml:"imageGen"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv builds a Config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
