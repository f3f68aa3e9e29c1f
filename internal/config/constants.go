package config

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBName           = "DB_NAME"
	EnvDBSSLMode        = "DB_SSLMODE"
	EnvAdminAPIKey      = "ADMIN_API_KEY"
	EnvProgressionCurve = "PROGRESSION_CURVE"
	EnvStartingGold     = "STARTING_GOLD"
	EnvStartingPlots    = "STARTING_PLOTS"
	EnvItemsConfigPath  = "ITEMS_CONFIG"
)

// Default values
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBUser           = "postgres"
	DefaultDBName           = "farmpatch"
	DefaultDBSSLMode        = "disable"
	DefaultProgressionCurve = "flat"
	DefaultItemsConfigPath  = "configs/items.json"
)

// Progression curve selector values
const (
	CurveFlat      = "flat"
	CurveGeometric = "geometric"
)
