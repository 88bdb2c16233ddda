package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	BaseURL           string
	CORSOrigin        string
	DSN               string
	JWTSecret         string
	UploadDir         string
	AllowRegistration bool

	AdminEmail    string
	AdminPassword string

	Redis RedisConfig
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load reads the .env file (if present) and assembles the runtime config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return Config{
		Port:              getEnv("PORT", "8080"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "http://localhost:5173"),
		DSN:               os.Getenv("DB_DSN"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		AllowRegistration: getEnv("ALLOW_REGISTRATION", "false") == "true",
		AdminEmail:        getEnv("ADMIN_EMAIL", "director@geosolar.local"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "changeme123"),
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
