package constants

type ctxKey string

const (
	CtxKeyRequestID ctxKey = "request_id"
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyCompanyID ctxKey = "company_id"
	CtxKeyPlantID   ctxKey = "plant_id"
)

const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"
)

// Ключи viper конфига.
const (
	ViperListenAddr  = "server.listen_addr"
	ViperDatabaseDSN = "database.dsn"
	ViperCatalogPath = "catalog.path"
	ViperSecretKey   = "auth.secret"
	ViperCORSOrigins = "server.cors_origins"
)
