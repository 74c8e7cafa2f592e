package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:            "3000",
			DBPassword:      "strong-enough-password",
			DBSSLMode:       "require",
			SessionTTLHours: 24,
			Env:             "development",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"zero session TTL", func(c *Config) { c.SessionTTLHours = 0 }, true},
		{"negative session TTL", func(c *Config) { c.SessionTTLHours = -1 }, true},
		{"production with default password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"production with empty password", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = ""
		}, true},
		{"production with strong password", func(c *Config) {
			c.Env = "production"
		}, false},
		{"development with default password", func(c *Config) {
			c.DBPassword = "password"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
