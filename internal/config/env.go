package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	logrus "github.com/sirupsen/logrus"
)

type Env struct {
	AppAddr       string
	GinMode       string
	LogFile       string
	LogStdout     bool
	StorageDriver string // "mysql" or "memory"
	DBUser        string
	DBPass        string
	DBHost        string
	DBName        string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	DemoOTPCode   string
	CORSOrigins   []string
}

func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on env vars")
	}

	origins := []string{}
	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", ""),
		LogFile:       getEnv("LOG_FILE", "./logs/app.log"),
		LogStdout:     getEnv("LOG_STDOUT", "1") != "0",
		StorageDriver: getEnv("STORAGE_DRIVER", "mysql"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPass:        getEnv("DB_PASS", ""),
		DBHost:        getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:        getEnv("DB_NAME", "doonconnect"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "user@123"),
		DemoOTPCode:   getEnv("DEMO_OTP_CODE", "111111"),
		CORSOrigins:   origins,
	}
}

// getEnv reads an environment variable or returns the provided default.
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return defaultValue
}
