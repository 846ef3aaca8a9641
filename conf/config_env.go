package conf

import (
	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port            string `env:"PORT" envDefault:"8081"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"text"`
	DBHost          string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort          string `env:"DB_PORT" envDefault:"5432"`
	DBUser          string `env:"DB_USER" envDefault:"wasel_dev_user"`
	DBPass          string `env:"DB_PASS" envDefault:"wasel_dev_pass"`
	DBName          string `env:"DB_NAME" envDefault:"wasel_dev_ms_delivery_management"`
	EnableDB        string `env:"ENABLE_DB" envDefault:"true"`
	RealtimeGateway string `env:"REALTIME_GATEWAY" envDefault:"http://localhost:4000"`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}
