package engine

import (
	"runtime"
	"testing"

	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, DefaultMaxConstants, config.MaxConstants)
	assert.Equal(t, code.DefaultFeatures(), config.Features)
	assert.Equal(t, runtime.GOMAXPROCS(0), config.parallelism())
	assert.NotNil(t, config.logger())
}

func TestConfigFromEnv(t *testing.T) {
	config, err := ConfigFromEnv(lookupMap(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	config, err = ConfigFromEnv(lookupMap(map[string]string{
		"RWARP_PARALLELISM":     "3",
		"RWARP_MAX_CONSTANTS":   "16",
		"RWARP_SIGN_EXTENSION":  "false",
		"RWARP_BULK_MEMORY":     "true",
		"RWARP_REFERENCE_TYPES": "1",
		"PARALLELISM":           "5",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, config.Parallelism)
	assert.Equal(t, 3, config.parallelism())
	assert.Equal(t, 16, config.MaxConstants)
	assert.Equal(t, code.Features{
		SaturatingFloatToInt: true,
		BulkMemory:           true,
		ReferenceTypes:       true,
	}, config.Features)
}

func TestConfigFromEnvErrors(t *testing.T) {
	_, err := ConfigFromEnv(lookupMap(map[string]string{"RWARP_PARALLELISM": "many"}))
	assert.Error(t, err)

	_, err = ConfigFromEnv(lookupMap(map[string]string{"RWARP_TAIL_CALL": "maybe"}))
	assert.Error(t, err)
}
