package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every process-level setting. It is built once in main and
// passed by reference to the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Port      string
	JWTSecret string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// SeedOnBoot runs the seed runner (users + time-slot horizon) at startup.
	SeedOnBoot bool

	// RecurringHorizonWeeks bounds the recurring scheduling path.
	RecurringHorizonWeeks int
}

// Load reads .env (when present) and the process environment into an
// immutable Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using system environment")
	}

	cfg := &Config{
		Port:                  getEnv("PORT", "3000"),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBName:                getEnv("DB_NAME", "unischedule"),
		DBSSLMode:             getEnv("DB_SSLMODE", "require"),
		SeedOnBoot:            getEnvBool("SEED", false),
		RecurringHorizonWeeks: getEnvInt("RECURRING_HORIZON_WEEKS", 12),
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set; authenticated routes will reject every request")
	}

	return cfg
}

// DSN builds the Postgres connection string for the GORM driver.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=unischedule&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
