package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const AppName = "cinematrix-cli"

type Config struct {
	Catalog CatalogConfig
	Log     LogConfig
	UI      UIConfig
}

type CatalogConfig struct {
	// Path of a catalog JSON file. Empty means the built-in catalog.
	Path string
	// Explicit is set when Path came from the environment rather than the default location.
	Explicit bool
}

type LogConfig struct {
	File  string
	Level string
	Debug bool
}

type UIConfig struct {
	// MovieID preselects a movie when the interactive UI starts. Zero means none.
	MovieID int
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	catalogPath := getEnv("CINEMATRIX_CATALOG", "")
	explicit := catalogPath != ""
	if !explicit {
		catalogPath = defaultCatalogPath()
	}

	debug := getEnvBool("CINEMATRIX_DEBUG", false)
	level := strings.ToLower(getEnv("CINEMATRIX_LOG_LEVEL", "info"))
	if debug {
		level = "debug"
	}

	return &Config{
		Catalog: CatalogConfig{
			Path:     catalogPath,
			Explicit: explicit,
		},
		Log: LogConfig{
			File:  getEnv("CINEMATRIX_LOG_FILE", defaultLogPath()),
			Level: level,
			Debug: debug,
		},
		UI: UIConfig{
			MovieID: getEnvInt("CINEMATRIX_MOVIE", 0),
		},
	}
}

func defaultCatalogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, AppName, "catalog.json")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "cinematrix.log")
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
