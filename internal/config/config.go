package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// registrar access, the sync schedule, notifications and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"domainsync" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Registrar configures access to the domain registrar API
	Registrar struct {
		// Region is the AWS region serving the Route 53 Domains API
		Region string `env:"REGISTRAR_REGION" env-default:"us-east-1" yaml:"region"`
		// PageSize is the number of domains requested per listing page
		PageSize int `env:"REGISTRAR_PAGE_SIZE" env-default:"100" yaml:"pageSize"`
		// ExpiryGracePeriod is how long past its expiry a domain is still kept
		ExpiryGracePeriod time.Duration `env:"REGISTRAR_EXPIRY_GRACE_PERIOD" env-default:"744h" yaml:"expiryGracePeriod"`
		// RequestsPerSecond caps outgoing registrar calls, zero disables the limit
		RequestsPerSecond float64 `env:"REGISTRAR_REQUESTS_PER_SECOND" env-default:"1" yaml:"requestsPerSecond"`
	} `yaml:"registrar"`

	// Sync contains the reconciliation schedule and worker settings
	Sync struct {
		// DailyAt is the UTC time of day (HH:MM) at which a reconciliation cycle runs
		DailyAt string `env:"SYNC_DAILY_AT" env-default:"19:00" yaml:"dailyAt"`
		// RunOnStart triggers a cycle as soon as the workers start
		RunOnStart bool `env:"SYNC_RUN_ON_START" env-default:"false" yaml:"runOnStart"`
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"SYNC_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// ContactSyncMaxAttempts is how many times a failed contact sync is retried
		ContactSyncMaxAttempts int `env:"SYNC_CONTACT_SYNC_MAX_ATTEMPTS" env-default:"5" yaml:"contactSyncMaxAttempts"`
	} `yaml:"sync"`

	// Notifications configures the operator notification channel
	Notifications struct {
		// SlackEndpoint is the incoming webhook URL, notifications are dropped when empty
		SlackEndpoint string `env:"NOTIFICATIONS_SLACK_ENDPOINT" env-default:"" yaml:"slackEndpoint"`
		// Timeout bounds a single webhook call
		Timeout time.Duration `env:"NOTIFICATIONS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// AllowPrivateEndpoints permits webhooks on private or loopback addresses
		AllowPrivateEndpoints bool `env:"NOTIFICATIONS_ALLOW_PRIVATE_ENDPOINTS" env-default:"false" yaml:"allowPrivateEndpoints"` //nolint: lll
	} `yaml:"notifications"`

	// JWT holds the keys used to sign and verify admin API tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

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
