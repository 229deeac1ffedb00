package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Ledger    LedgerConfig
	PetStores PetStoresConfig
	Auth      AuthConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"pet_order"`
	Password string `envconfig:"DB_PASSWORD" default:"pet_order"`
	DBName   string `envconfig:"DB_NAME" default:"pet_store_db"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// LedgerConfig selects the transaction ledger backend.
// "postgres" is the durable backend shared by all pet-order instances;
// "memory" keeps transactions in process and is meant for local runs and tests.
type LedgerConfig struct {
	Driver string `envconfig:"LEDGER_DRIVER" default:"postgres"`
}

type PetStoresConfig struct {
	Store1URL string        `envconfig:"PET_STORE1_URL" default:"http://pet-store1:8000"`
	Store2URL string        `envconfig:"PET_STORE2_URL" default:"http://pet-store2:8000"`
	Timeout   time.Duration `envconfig:"PET_STORE_TIMEOUT" default:"3s"`
}

type AuthConfig struct {
	OwnerSecret string `envconfig:"OWNER_PC_SECRET" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,OwnerPC"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Ledger: LedgerConfig{
			Driver: "postgres",
		},
		PetStores: PetStoresConfig{
			Store1URL: "http://localhost:18001",
			Store2URL: "http://localhost:18002",
			Timeout:   time.Second,
		},
		Auth: AuthConfig{
			OwnerSecret: "LovesPetsL2M3n4",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "OwnerPC"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
