package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Payment     PaymentConfig  `mapstructure:"payment"`
	Email       EmailConfig    `mapstructure:"email"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Group       GroupConfig    `mapstructure:"group"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"tokenTTL"` // hours
}

// PaymentConfig contains UPI payee settings for payment intents
type PaymentConfig struct {
	PayeeVPA  string        `mapstructure:"payeeVPA"`
	PayeeName string        `mapstructure:"payeeName"`
	Currency  string        `mapstructure:"currency"`
	IntentTTL time.Duration `mapstructure:"intentTTL"` // hours
	QRSize    int           `mapstructure:"qrSize"`
}

// EmailConfig contains transactional email provider settings
type EmailConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseURL     string        `mapstructure:"baseURL"`
	APIKey      string        `mapstructure:"apiKey"`
	SenderEmail string        `mapstructure:"senderEmail"`
	SenderName  string        `mapstructure:"senderName"`
	Timeout     time.Duration `mapstructure:"timeout"` // seconds
}

// CacheConfig contains Redis settings for the group listing cache
type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	RedisURL     string        `mapstructure:"redisURL"`
	GroupListTTL time.Duration `mapstructure:"groupListTTL"` // seconds
}

// GroupConfig contains room code settings
type GroupConfig struct {
	RoomCodeLength      int `mapstructure:"roomCodeLength"`
	MaxRoomCodeAttempts int `mapstructure:"maxRoomCodeAttempts"`
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
