package prompt

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

const DefaultErrorPrefix = "❌"

// Config tunes how a [Resolver] behaves.
// It can be loaded from the environment with [ConfigFromEnv].
type Config struct {
	// MaxAttempts bounds the number of lines read for one prompt, and 0 means no bound. ENV: ASK_MAX_ATTEMPTS
	MaxAttempts int `env:"ASK_MAX_ATTEMPTS,default=0"`
	// NonInteractive makes every prompt surface the first failure instead of retrying. ENV: ASK_NON_INTERACTIVE
	NonInteractive bool `env:"ASK_NON_INTERACTIVE,default=false"`
	// ErrorPrefix is written before problem messages. ENV: ASK_ERROR_PREFIX
	ErrorPrefix string `env:"ASK_ERROR_PREFIX,default=❌"`
}

// DefaultConfig returns the [Config] used when nothing else is specified.
func DefaultConfig() Config {
	return Config{ErrorPrefix: DefaultErrorPrefix}
}

// Validate checks that the [Config] values make sense.
func (c Config) Validate() error {
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts should be >= 0, got %d", c.MaxAttempts)
	}
	return nil
}

// ConfigFromEnv loads a [Config] from ASK_* environment variables, falling back to [DefaultConfig] values.
// A value that fails to parse is an error rather than being ignored.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		if !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return DefaultConfig(), fmt.Errorf("failed to load config from environment: %w", err)
		}
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
