package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value required to boot is present.
// The AI key is deliberately not required here: the summary endpoints
// degrade to upstream errors without it, the rest of the API works.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"JWT_SECRET":  cfg.JWTSecret,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "is required"}
		}
	}
	if IsProduction() && cfg.DBSSLMode == "disable" {
		return ValidationError{Field: "DB_SSL_MODE", Message: "must not be disabled in production"}
	}
	return nil
}
