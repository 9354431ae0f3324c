// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "valentine-week"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8001"
	DefaultDatabaseDriver     = "sqlite"
	DefaultDatabaseURL        = "valentine_week.db"
	DefaultDatabaseName       = "valentine_week"
	DefaultLogLevel           = "info"
	DefaultAPIPrefix          = "/api"
	DefaultReplaceMaxAttempts = 3
	DefaultStatusListLimit    = 1000
	DefaultMetricsPath        = "/metrics"
)

// 対応しているデータベースドライバ
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverRedis    = "redis"
)
