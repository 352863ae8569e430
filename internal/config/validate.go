package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0 (got %v)", c.Database.QueryTimeout)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.MaxClients <= 0 {
			return fmt.Errorf("rate_limit.max_clients must be > 0 (got %d)", c.RateLimit.MaxClients)
		}
	}

	if c.Notes.HardDeleteRetentionDays <= 0 {
		return fmt.Errorf("notes.hard_delete_retention_days must be > 0 (got %d)", c.Notes.HardDeleteRetentionDays)
	}

	return nil
}
