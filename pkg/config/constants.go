package config

const EnvPrefix = "CAFECANVAS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "CAFECANVAS_APP_ENV"
	EnvPort   = "CAFECANVAS_APP_PORT"

	EnvDBDSN  = "CAFECANVAS_DB_DSN"
	EnvDBHost = "CAFECANVAS_DB_HOST"
	EnvDBUser = "CAFECANVAS_DB_USER"
	EnvDBName = "CAFECANVAS_DB_NAME"

	EnvRedisURL = "CAFECANVAS_REDIS_URL"

	EnvUseMemoryStore = "CAFECANVAS_USE_MEMORY_STORE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
