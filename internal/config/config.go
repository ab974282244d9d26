package config

type Config interface {
	EnvConfig
	GatewayConfig
	StoreConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	IsDev() bool
}

type mainConfig struct {
	EnvVars
	Gateway
	Store
}

// New loads the optional .env file and returns the environment backed configuration.
func New() Config {
	loadDotEnv(GetEnv(envFileVar, ".env"))
	return mainConfig{}
}
