package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServiceName string

	ServerPort int

	MongoURI string
	MongoDB  string

	SMTPHost string
	SMTPPort int

	EmailUser      string
	EmailPassword  string
	RecipientEmail string

	// AdminPassword is shipped to the browser and compared there. It is a
	// product setting, not a server-side secret.
	AdminPassword string

	LogLevel string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "storefront"),

		ServerPort: EnvIntDefault("PORT", 5000),

		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  EnvDefault("MONGO_DB", "sizzilia"),

		SMTPHost: EnvDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: EnvIntDefault("SMTP_PORT", 587),

		EmailUser:      os.Getenv("EMAIL_USER"),
		EmailPassword:  os.Getenv("EMAIL_PASS"),
		RecipientEmail: os.Getenv("RECIPIENT_EMAIL"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
