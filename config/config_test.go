package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/config"
	"github.com/katalvlaran/basins/heightmap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no basins.yaml is picked up.
	chdir(t, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
analysis:
  frontier: queue
  workers: 2
  top_n: 2
output:
  format: yaml
  color: false
  png_scale: 4
logging:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "queue", cfg.Analysis.Frontier)
	assert.Equal(t, 2, cfg.Analysis.Workers)
	assert.Equal(t, 2, cfg.Analysis.TopN)
	assert.Equal(t, heightmap.Ridge, cfg.Analysis.Ridge)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 4, cfg.Output.PNGScale)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BASINS_ANALYSIS_TOP_N", "4")
	t.Setenv("BASINS_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(writeConfig(t, "analysis:\n  workers: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Analysis.TopN)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 1, cfg.Analysis.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"Frontier", "analysis:\n  frontier: heap\n", config.ErrInvalidFrontier},
		{"Workers", "analysis:\n  workers: -1\n", config.ErrInvalidWorkers},
		{"TopN", "analysis:\n  top_n: 0\n", config.ErrInvalidTopN},
		{"Ridge", "analysis:\n  ridge: 12\n", config.ErrInvalidRidge},
		{"Format", "output:\n  format: xml\n", config.ErrInvalidFormat},
		{"Scale", "output:\n  png_scale: 0\n", config.ErrInvalidScale},
		{"LogLevel", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"LogFormat", "logging:\n  format: xml\n", config.ErrInvalidLogFmt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestBasinOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Frontier = "queue"
	cfg.Analysis.Ridge = 5

	hm, err := heightmap.Parse("0123456789")
	require.NoError(t, err)
	b, err := basin.Explore(hm, heightmap.Point{}, cfg.BasinOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Size())
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
