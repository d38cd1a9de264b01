package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "TT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "TT_DB_DSN"
	EnvDBHost = "TT_DB_HOST"
	EnvDBUser = "TT_DB_USER"
	EnvDBName = "TT_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
