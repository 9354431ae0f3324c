// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite | mongo | redis
	URL    string `mapstructure:"url"`
	Name   string `mapstructure:"name"` // mongo のデータベース名 (redis はURLでDB番号を指定)
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AppConfig struct {
	APIPrefix          string `mapstructure:"api_prefix"`
	ReplaceMaxAttempts int    `mapstructure:"replace_max_attempts"`
	StatusListLimit    int    `mapstructure:"status_list_limit"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

var Cfg Config

// LoadConfig は path 配下の config.yaml と環境変数から設定を読み込み、Cfg に格納します
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = *cfg
	return nil
}

// Load は設定を読み込んで返します (グローバルの Cfg は変更しない)
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように接頭辞をつけた環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 旧バックエンドと同じ環境変数名も受け付ける
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "MONGO_URL")
	_ = v.BindEnv("database.name", "APP_DATABASE_NAME", "DB_NAME")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	normalize(&cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Database Driver: %s", cfg.Database.Driver)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("database.name", DefaultDatabaseName)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"*"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("app.api_prefix", DefaultAPIPrefix)
	v.SetDefault("app.replace_max_attempts", DefaultReplaceMaxAttempts)
	v.SetDefault("app.status_list_limit", DefaultStatusListLimit)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", DefaultMetricsPath)
}

// normalize は不正な値をデフォルトに戻します
func normalize(cfg *Config) {
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	if cfg.App.ReplaceMaxAttempts <= 0 {
		log.Printf("Replace max attempts not set or invalid, using default '%d'", DefaultReplaceMaxAttempts)
		cfg.App.ReplaceMaxAttempts = DefaultReplaceMaxAttempts
	}
	if cfg.App.StatusListLimit <= 0 {
		log.Printf("Status list limit not set or invalid, using default '%d'", DefaultStatusListLimit)
		cfg.App.StatusListLimit = DefaultStatusListLimit
	}
	if cfg.App.APIPrefix == "/" {
		cfg.App.APIPrefix = ""
	}
	cfg.App.APIPrefix = strings.TrimRight(cfg.App.APIPrefix, "/")
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
}
