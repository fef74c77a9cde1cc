package config

import (
	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"

	"scoopo-app/booking-service/internal/utils/mongodb"
)

// Config holds all application configuration
type Config struct {
	MongoDB mongodb.Config
	Server  ServerConfig
	Admin   AdminConfig
	SMTP    SMTPConfig
	Mail    MailConfig
	Redis   RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string `env:"SERVER_PORT" envDefault:"8080"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:3000"`
}

// AdminConfig holds the shared secret gating the admin endpoints.
type AdminConfig struct {
	Token string `env:"ADMIN_TOKEN,required"`
}

// SMTPConfig holds mail transport configuration
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
}

// MailConfig holds sender and owner addresses for booking notifications.
type MailConfig struct {
	From       string `env:"MAIL_FROM" envDefault:"ScooPo Booking <info@scooposervice.com>"`
	OwnerEmail string `env:"OWNER_EMAIL" envDefault:"admin@scoopo.com.au"`
}

// RedisConfig holds the optional cache address. Empty URL disables caching.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// NewConfig creates a new Config
func NewConfig() (*Config, error) {
	cfg := new(Config)
	err := env.Parse(cfg)

	return cfg, err
}
