package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds catalog store settings.
// Driver "sqlite" uses Path; driver "postgres" uses the network fields.
type DatabaseConfig struct {
	Driver             string
	Path               string
	BusyTimeoutMs      int
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// DispatchConfig holds settings for locating and running external processing backends.
type DispatchConfig struct {
	Mode        string
	Interpreter string
	ScriptsDir  string
	AppDir      string
	ToolDirs    []string
	DataDir     string
	DataDirVar  string
	Timeout     time.Duration
	RateRPS     float64
	RateBurst   int
}

// CompressConfig holds settings for the native compression fast path.
type CompressConfig struct {
	GhostscriptPath string
}

// MinIOConfig holds object storage settings for MinIO.
// Archiving is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	Environment string
	LogLevel    string
	Database    DatabaseConfig
	Dispatch    DispatchConfig
	Compress    CompressConfig
	MinIO       MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", "sqlite"),
			Path:               getEnv("DB_PATH", "documents.db"),
			BusyTimeoutMs:      getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 4),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Dispatch: DispatchConfig{
			Mode:        getEnv("DISPATCH_MODE", "packaged"),
			Interpreter: getEnv("DISPATCH_INTERPRETER", ""),
			ScriptsDir:  getEnv("DISPATCH_SCRIPTS_DIR", "python-scripts"),
			AppDir:      getEnv("DISPATCH_APP_DIR", ""),
			ToolDirs:    getEnvList("DISPATCH_TOOL_DIRS"),
			DataDir:     getEnv("DISPATCH_DATA_DIR", ""),
			DataDirVar:  getEnv("DISPATCH_DATA_DIR_VAR", "TESSDATA_PREFIX"),
			Timeout:     getEnvDuration("DISPATCH_TIMEOUT", 0),
			RateRPS:     getEnvFloat("DISPATCH_RATE_RPS", 5),
			RateBurst:   getEnvInt("DISPATCH_RATE_BURST", 10),
		},
		Compress: CompressConfig{
			GhostscriptPath: getEnv("COMPRESS_GS_PATH", ""),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			URLExpiry: getEnvDuration("MINIO_URL_EXPIRY", 15*time.Minute),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
