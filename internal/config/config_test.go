package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:             "8460",
		Env:              "development",
		DBPassword:       "password",
		StorageOriginURL: "https://origin.example.net/",
		CDNBaseURL:       "https://cdn.example.net/",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Development defaults", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing storage origin", func(c *Config) { c.StorageOriginURL = "" }, true},
		{"Missing CDN base", func(c *Config) { c.CDNBaseURL = "" }, true},
		{"Storage origin without trailing slash", func(c *Config) {
			c.StorageOriginURL = "https://origin.example.net"
		}, true},
		{"CDN base without trailing slash", func(c *Config) {
			c.CDNBaseURL = "https://cdn.example.net"
		}, true},
		{"Production with default password", func(c *Config) {
			c.Env = "production"
		}, true},
		{"Prod with empty password", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = ""
		}, true},
		{"Production with real password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "secure-password"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
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
