package envstruct_test

import (
	"testing"
	"time"

	"github.com/alibigame/alibi/internal/envstruct"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Addr         string        `env:"TEST_ADDR" envDefault:"localhost:3000"`
	MaxPerWindow int           `env:"TEST_MAX" envDefault:"100"`
	Window       time.Duration `env:"TEST_WINDOW" envDefault:"15m"`
	Debug        bool          `env:"TEST_DEBUG" envDefault:"false"`
	Required     string        `env:"TEST_REQUIRED"`
}

func TestPopulate(t *testing.T) {
	t.Run("defaults and overrides", func(t *testing.T) {
		lookupEnv := func(key string) (string, bool) {
			switch key {
			case "TEST_MAX":
				return "7", true
			case "TEST_REQUIRED":
				return "secret", true
			default:
				return "", false
			}
		}

		var cfg testConfig
		err := envstruct.Populate(&cfg, lookupEnv)
		require.NoError(t, err)
		require.Equal(t, "localhost:3000", cfg.Addr)
		require.Equal(t, 7, cfg.MaxPerWindow)
		require.Equal(t, 15*time.Minute, cfg.Window)
		require.False(t, cfg.Debug)
		require.Equal(t, "secret", cfg.Required)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := envstruct.Populate(&cfg, func(string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrEnvNotSet)
	})

	t.Run("accumulates all violations", func(t *testing.T) {
		lookupEnv := func(key string) (string, bool) {
			switch key {
			case "TEST_MAX":
				return "not-a-number", true
			case "TEST_WINDOW":
				return "not-a-duration", true
			default:
				return "", false
			}
		}

		var cfg testConfig
		err := envstruct.Populate(&cfg, lookupEnv)
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse int")
		require.Contains(t, err.Error(), "parse duration")
		require.ErrorIs(t, err, envstruct.ErrEnvNotSet)
	})

	t.Run("rejects non-struct", func(t *testing.T) {
		var s string
		err := envstruct.Populate(&s, func(string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrInvalidValue)
	})
}
