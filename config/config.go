package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds process-wide settings. It is loaded once at startup and
// treated as immutable for the lifetime of the process.
type Config struct {
	Port string

	JWTSecret string
	JWTTTL    time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFromName string

	UploadDir   string
	CORSOrigins []string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Load reads configuration from the environment. JWT_SECRET is required;
// everything else has a workable default.
func Load() (*Config, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	ttlHours := 24 * 7
	if raw := strings.TrimSpace(os.Getenv("JWT_TTL_HOURS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttlHours = n
		}
	}

	return &Config{
		Port:         envOrDefault("PORT", "4000"),
		JWTSecret:    secret,
		JWTTTL:       time.Duration(ttlHours) * time.Hour,
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFromName: envOrDefault("SMTP_FROM_NAME", "StayBnB"),
		UploadDir:    envOrDefault("UPLOAD_DIR", "uploads"),
		CORSOrigins:  parseCorsOrigins(),
	}, nil
}
