package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/config"
)

// TestLoad_Defaults resolves the built-in configuration from an empty viper.
func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

// TestLoad_FileAndEnv layers a YAML file under environment overrides.
func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".lvmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 12
height: 9
seed: 77
log:
  level: debug
report:
  format: toml
`), 0o600))
	t.Setenv("LVMAZE_HEIGHT", "4")
	t.Setenv("LVMAZE_LOG_FORMAT", "json")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	config.BindEnv(v)

	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 4, c.Height)
	assert.Equal(t, int64(77), c.Seed)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "toml", c.Report.Format)
	assert.Equal(t, int64(77), c.ResolveSeed())
}

// TestValidate_Rejects covers each invalid setting.
func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*config.Config){
		"zero width":      func(c *config.Config) { c.Width = 0 },
		"zero max weight": func(c *config.Config) { c.MaxWeight = 0 },
		"negative ticks":  func(c *config.Config) { c.MaxTicks = -1 },
		"log format":      func(c *config.Config) { c.Log.Format = "xml" },
		"report format":   func(c *config.Config) { c.Report.Format = "csv" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

// TestResolveSeed_Random picks a non-zero seed when none is configured.
func TestResolveSeed_Random(t *testing.T) {
	assert.NotZero(t, config.Default().ResolveSeed())
}
