package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides defaults", func(t *testing.T) {
		os.Args = []string{"testbin",
			"-a", ":9090",
			"-d", "postgres://u:p@db:5432/insight",
			"-s", "flag-secret",
			"-t", "30",
			"-b", "12",
			"-o", "https://app.example.com",
		}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://u:p@db:5432/insight", cfg.DatabaseDSN)
		assert.Equal(t, "flag-secret", cfg.SecretKey)
		assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 12, cfg.BCryptCost)
		assert.Equal(t, "https://app.example.com", cfg.CORSAllowedOrigins)
	})

	t.Run("keeps defaults without flags", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":5000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
	})
}
