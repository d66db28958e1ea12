package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Session  SessionConfig
	OAuth    OAuthConfig
	Admin    AdminConfig
	Billing  BillingConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains session token signing configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains one-time code issuance configuration
type OTPConfig struct {
	CodeLength    int
	TTLMinutes    int
	MaxAttempts   int // verify attempts per (email, ip) within the attempt window
	AttemptWindow int // in minutes
	DevMode       bool
	NotifySubject string
	LoginSubject  string
}

// SessionConfig contains session cookie configuration
type SessionConfig struct {
	CookieName      string
	AdminCookieName string
	Secure          bool
	TTLHours        int
	AdminTTLHours   int
}

// OAuthConfig contains provider and signed-state configuration
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string
	Scopes       []string
	StateSecret  string
	StateMaxAge  int // in minutes
}

// AdminConfig contains admin panel authentication configuration
type AdminConfig struct {
	BcryptCost     int
	MaxLoginFails  int
	LockoutMinutes int
	AuditSubject   string
}

// BillingConfig contains the external subscription profile API configuration
type BillingConfig struct {
	ServiceURL      string
	TimeoutSeconds  int
	CacheTTLMinutes int
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
