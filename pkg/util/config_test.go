package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicle_capacity: 6\nworkers: 2\n"), 0o644))
	t.Setenv("RIDEPOOL_WORKERS", "8")

	require.NoError(t, ReadConfig(path))
	assert.Equal(t, 6, viper.GetInt("VEHICLE_CAPACITY"))
	assert.Equal(t, 8, viper.GetInt("WORKERS"))

	viper.Reset()
	assert.Error(t, ReadConfig(filepath.Join(t.TempDir(), "missing.yaml")))
}
