package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bizadmin/internal/admin/repository"
)

type Config struct {
	MongoURI     string
	Port         string
	DBName       string
	Collections  repository.CollectionNames
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LogLevel     string

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	DashboardCacheTTL time.Duration

	BootstrapAdminID      string
	UpcomingMilestoneDays int
}

func LoadConfig() (*Config, error) {
	names := repository.DefaultCollectionNames()
	names.Projects = getEnv("COLLECTION_PROJECTS", names.Projects)
	names.Employees = getEnv("COLLECTION_EMPLOYEES", names.Employees)
	names.Departments = getEnv("COLLECTION_DEPARTMENTS", names.Departments)
	names.Customers = getEnv("COLLECTION_CUSTOMERS", names.Customers)
	names.Suppliers = getEnv("COLLECTION_SUPPLIERS", names.Suppliers)
	names.Products = getEnv("COLLECTION_PRODUCTS", names.Products)
	names.Returns = getEnv("COLLECTION_RETURNS", names.Returns)
	names.Salaries = getEnv("COLLECTION_SALARIES", names.Salaries)
	names.Documents = getEnv("COLLECTION_DOCUMENTS", names.Documents)
	names.UserRoles = getEnv("COLLECTION_USER_ROLES", names.UserRoles)
	names.Activity = getEnv("COLLECTION_ACTIVITY", names.Activity)

	cfg := &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:         getEnv("PORT", "8080"),
		DBName:       getEnv("DB_NAME", "bizadmin"),
		Collections:  names,
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),

		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		DashboardCacheTTL: getEnvDuration("DASHBOARD_CACHE_TTL", 30*time.Second),

		BootstrapAdminID:      strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_ID")),
		UpcomingMilestoneDays: getEnvInt("UPCOMING_MILESTONE_DAYS", 30),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.UpcomingMilestoneDays < 0 {
		return fmt.Errorf("UPCOMING_MILESTONE_DAYS must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}

// getEnvDuration accepts whole seconds ("15") or a Go duration ("1m30s").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
