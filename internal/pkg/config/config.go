package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/superblog/auth/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "auth-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "superblog")

	// OTP config
	configs.OTP.CodeLength = GetEnvAsInt("OTP_CODE_LENGTH", 6)
	configs.OTP.TTLMinutes = GetEnvAsInt("OTP_TTL_MINUTES", 10)
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 5)
	configs.OTP.AttemptWindow = GetEnvAsInt("OTP_ATTEMPT_WINDOW_MINUTES", 10)
	configs.OTP.DevMode = GetEnvAsBool("OTP_DEV_MODE", false)
	configs.OTP.NotifySubject = GetEnv("OTP_NOTIFY_SUBJECT", "notification.otp")
	configs.OTP.LoginSubject = GetEnv("OTP_LOGIN_SUBJECT", "user.authenticated")

	// Session config
	configs.Session.CookieName = GetEnv("SESSION_COOKIE_NAME", "sb_session")
	configs.Session.AdminCookieName = GetEnv("SESSION_ADMIN_COOKIE_NAME", "sb_admin_session")
	configs.Session.Secure = GetEnvAsBool("SESSION_COOKIE_SECURE", true)
	configs.Session.TTLHours = GetEnvAsInt("SESSION_TTL_HOURS", 72)
	configs.Session.AdminTTLHours = GetEnvAsInt("SESSION_ADMIN_TTL_HOURS", 12)

	// OAuth config
	configs.OAuth.ClientID = GetEnv("OAUTH_CLIENT_ID", "")
	configs.OAuth.ClientSecret = GetEnv("OAUTH_CLIENT_SECRET", "")
	configs.OAuth.AuthURL = GetEnv("OAUTH_AUTH_URL", "")
	configs.OAuth.TokenURL = GetEnv("OAUTH_TOKEN_URL", "")
	configs.OAuth.RedirectURL = GetEnv("OAUTH_REDIRECT_URL", "")
	configs.OAuth.Scopes = GetEnvAsSlice("OAUTH_SCOPES", []string{"read"})
	configs.OAuth.StateSecret = GetEnv("OAUTH_STATE_SECRET", "")
	configs.OAuth.StateMaxAge = GetEnvAsInt("OAUTH_STATE_MAX_AGE_MINUTES", 10)

	// Admin config
	configs.Admin.BcryptCost = GetEnvAsInt("ADMIN_BCRYPT_COST", 12)
	configs.Admin.MaxLoginFails = GetEnvAsInt("ADMIN_MAX_LOGIN_FAILS", 5)
	configs.Admin.LockoutMinutes = GetEnvAsInt("ADMIN_LOCKOUT_MINUTES", 15)
	configs.Admin.AuditSubject = GetEnv("ADMIN_AUDIT_SUBJECT", "admin.audit")

	// Billing config
	configs.Billing.ServiceURL = GetEnv("BILLING_SERVICE_URL", "http://localhost:9981")
	configs.Billing.TimeoutSeconds = GetEnvAsInt("BILLING_TIMEOUT_SECONDS", 5)
	configs.Billing.CacheTTLMinutes = GetEnvAsInt("BILLING_CACHE_TTL_MINUTES", 5)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
