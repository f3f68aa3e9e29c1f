package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/willobee/FarmPatch_Go/internal/domain"
)

// Config holds all application configuration loaded from the environment.
type Config struct {
	Port        string
	Environment string

	LogLevel  string
	LogFormat string
	LogDir    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// AdminAPIKey guards the /admin endpoints. Empty disables them.
	AdminAPIKey string

	// ProgressionCurve selects the XP requirement curve, "flat" or "geometric".
	ProgressionCurve string

	StartingGold  int
	StartingPlots int

	ItemsConfigPath string
}

// Load reads configuration from the environment, applying a .env file if one
// exists in the working directory.
func Load() (*Config, error) {
	// Missing .env is fine, real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv(EnvPort, DefaultPort),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:           getEnv(EnvLogDir, DefaultLogDir),
		DBHost:           getEnv(EnvDBHost, DefaultDBHost),
		DBPort:           getEnv(EnvDBPort, DefaultDBPort),
		DBUser:           getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:       getEnv(EnvDBPassword, ""),
		DBName:           getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:        getEnv(EnvDBSSLMode, DefaultDBSSLMode),
		AdminAPIKey:      getEnv(EnvAdminAPIKey, ""),
		ProgressionCurve: getEnv(EnvProgressionCurve, DefaultProgressionCurve),
		ItemsConfigPath:  getEnv(EnvItemsConfigPath, DefaultItemsConfigPath),
	}

	var err error
	cfg.StartingGold, err = getEnvInt(EnvStartingGold, domain.DefaultStartingGold)
	if err != nil {
		return nil, err
	}
	cfg.StartingPlots, err = getEnvInt(EnvStartingPlots, domain.DefaultStartingPlots)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid %s %q: %w", EnvPort, c.Port, err)
	}
	if c.ProgressionCurve != CurveFlat && c.ProgressionCurve != CurveGeometric {
		return fmt.Errorf("invalid %s %q: must be %q or %q",
			EnvProgressionCurve, c.ProgressionCurve, CurveFlat, CurveGeometric)
	}
	if c.StartingGold < 0 {
		return fmt.Errorf("invalid %s: must be >= 0", EnvStartingGold)
	}
	if c.StartingPlots < 1 {
		return fmt.Errorf("invalid %s: must be >= 1", EnvStartingPlots)
	}
	if c.ItemsConfigPath == "" {
		return fmt.Errorf("%s must not be empty", EnvItemsConfigPath)
	}
	return nil
}

// GetDBConnString builds a postgres connection string for pgx.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
