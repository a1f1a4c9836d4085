package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env              string
	Port             string
	DatabaseURL      string
	RedisURL         string
	JWTSecret        string
	CORSOrigins      []string
	WebBaseURL       string
	AllowEmailBypass bool
	MailAPIKey       string
	MailFrom         string
	MLSFeedURL       string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "4000"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}
	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	webBase := viper.GetString("WEB_BASE_URL")
	if webBase == "" {
		webBase = "http://localhost:3000"
	}

	return &Config{
		Env:              env,
		Port:             port,
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		RedisURL:         viper.GetString("REDIS_URL"),
		JWTSecret:        secret,
		CORSOrigins:      corsOrigins(viper.GetString("CORS_ORIGINS")),
		WebBaseURL:       webBase,
		AllowEmailBypass: strings.EqualFold(viper.GetString("ALLOW_EMAIL_BYPASS"), "true"),
		MailAPIKey:       viper.GetString("MAIL_API_KEY"),
		MailFrom:         viper.GetString("MAIL_FROM"),
		MLSFeedURL:       viper.GetString("MLS_FEED_URL"),
	}, nil
}

func corsOrigins(s string) []string {
	if s == "" {
		s = "https://app.bricklyusa.com,http://localhost:3000"
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
