// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

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
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists origins allowed to call the API from a browser.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// MaxBodyBytes limits JSON request bodies.
		MaxBodyBytes string `env:"HTTP_MAX_BODY" env-default:"1M" yaml:"maxBody"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"travel"    yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"travel"    yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"      yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"   yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"travel"    yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"8"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Auth configures admin sign-in and session tokens.
	Auth struct {
		// PrivateKey is the PEM encoded RSA key signing session tokens.
		PrivateKey string `env:"AUTH_PRIVATE_KEY" yaml:"privateKey"`
		// SessionTTL is how long a session stays valid.
		SessionTTL time.Duration `env:"AUTH_SESSION_TTL" env-default:"168h" yaml:"sessionTTL"`
		// SecureCookie sets the __Secure- prefixed cookie with the Secure flag.
		SecureCookie bool `env:"AUTH_SECURE_COOKIE" env-default:"false" yaml:"secureCookie"`
		// AllowSignup keeps the signup page open after the first admin exists.
		AllowSignup bool `env:"AUTH_ALLOW_SIGNUP" env-default:"false" yaml:"allowSignup"`
		// Issuer is the iss claim of issued tokens.
		Issuer string `env:"AUTH_ISSUER" env-default:"travel" yaml:"issuer"`
	} `yaml:"auth"`

	// Storage configures the object store holding uploaded media.
	Storage struct {
		Bucket         string `env:"STORAGE_BUCKET"           yaml:"bucket"`
		Region         string `env:"STORAGE_REGION"           env-default:"us-east-1" yaml:"region"`
		Endpoint       string `env:"STORAGE_ENDPOINT"         yaml:"endpoint"`
		CDNBaseURL     string `env:"STORAGE_CDN_BASE_URL"     yaml:"cdnBaseUrl"`
		MaxUploadBytes int64  `env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"5242880"   yaml:"maxUploadBytes"`
		// Static credentials; the default AWS credential chain is used when empty.
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID"     yaml:"accessKeyId"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
	} `yaml:"storage"`

	// Cache configures the redis page cache of public responses.
	Cache struct {
		// URL is a redis:// URL. An empty URL disables the cache.
		URL string        `env:"CACHE_URL" yaml:"url"`
		TTL time.Duration `env:"CACHE_TTL" env-default:"10m" yaml:"ttl"`
	} `yaml:"cache"`

	// Mail configures contact form notifications sent through SES.
	Mail struct {
		Region string `env:"MAIL_REGION" env-default:"us-east-1" yaml:"region"`
		From   string `env:"MAIL_FROM"   yaml:"from"`
		// To defaults to the contact email of the site settings when empty.
		To string `env:"MAIL_TO" yaml:"to"`

		AccessKeyID     string `env:"MAIL_ACCESS_KEY_ID"     yaml:"accessKeyId"`
		SecretAccessKey string `env:"MAIL_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
	} `yaml:"mail"`

	// Worker configures the background job processor.
	Worker struct {
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// SessionPurgeInterval is the period of the expired session cleanup.
		SessionPurgeInterval time.Duration `env:"WORKER_SESSION_PURGE_INTERVAL" env-default:"1h" yaml:"sessionPurgeInterval"`
	} `yaml:"worker"`

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
