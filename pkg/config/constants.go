package config

// EnvPrefix is passed to envconfig; individual fields carry full names so
// the prefix stays empty and variables remain greppable.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "PROPSTABLE_DB_DSN"
	EnvDBHost = "PROPSTABLE_DB_HOST"
	EnvDBUser = "PROPSTABLE_DB_USER"
	EnvDBName = "PROPSTABLE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
