package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Data sources a TripSource can be built from.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	DataSource string
	DataDir    string
	CitiesFile string

	LogLevel         string
	PageSize         int
	StatsConcurrency int
	MaxRetries       int

	Cities []City
}

// Load reads the .env file, the city catalogue and returns a populated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "bikeshare"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "bikeshare"),
		PostgresDB:       getEnv("POSTGRES_DB", "bikeshare"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		DataSource: getEnv("DATA_SOURCE", SourceCSV),
		DataDir:    getEnv("DATA_DIR", "."),
		CitiesFile: getEnv("CITIES_FILE", "cities.yml"),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PageSize:         getEnvInt("PAGE_SIZE", 5),
		StatsConcurrency: getEnvInt("STATS_CONCURRENCY", 4),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),
	}

	cities, err := LoadCities(cfg.CitiesFile)
	if err != nil {
		return nil, err
	}
	cfg.Cities = cities

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// CityNames returns the catalogue's city names in catalogue order.
func (c *Config) CityNames() []string {
	names := make([]string, len(c.Cities))
	for i, city := range c.Cities {
		names[i] = city.Name
	}
	return names
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
