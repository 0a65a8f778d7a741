package engine

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mstoykov/envconfig"
	"github.com/pgavlin/rwarp/wasm/code"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of the environment variables read by ConfigFromEnv.
const EnvPrefix = "RWARP"

// DefaultMaxConstants is the default capacity of a module's constant pool.
const DefaultMaxConstants = 1 << 20

// Config configures an Engine.
type Config struct {
	// Parallelism is the maximum number of functions translated concurrently. Values <= 0 select
	// runtime.GOMAXPROCS(0).
	Parallelism int `envconfig:"PARALLELISM"`

	// MaxConstants is the capacity of each module's constant pool. Values <= 0 select the largest
	// capacity the bytecode can address.
	MaxConstants int `envconfig:"MAX_CONSTANTS"`

	// Features selects the post-MVP proposals accepted by the validator.
	Features code.Features `ignored:"true"`

	// Logger overrides the package logger if non-nil.
	Logger *zap.Logger `ignored:"true"`
}

func DefaultConfig() Config {
	return Config{
		MaxConstants: DefaultMaxConstants,
		Features:     code.DefaultFeatures(),
	}
}

// ConfigFromEnv returns the default configuration overlaid with any RWARP_* variables returned
// by lookup. If lookup is nil, the process environment is used.
//
// The recognized variables are
//
//	RWARP_PARALLELISM
//	RWARP_MAX_CONSTANTS
//	RWARP_SIGN_EXTENSION
//	RWARP_SATURATING_FLOAT_TO_INT
//	RWARP_BULK_MEMORY
//	RWARP_REFERENCE_TYPES
//	RWARP_TAIL_CALL
func ConfigFromEnv(lookup func(key string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	config := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &config, lookup); err != nil {
		return Config{}, fmt.Errorf("reading engine configuration: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &config.Features, lookup); err != nil {
		return Config{}, fmt.Errorf("reading feature configuration: %w", err)
	}
	return config, nil
}

func (c Config) parallelism() int {
	if c.Parallelism <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Parallelism
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger()
}
