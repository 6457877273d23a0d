package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  path: other.xlsx
  range: A1:F40
server:
  addr: ":9000"
  read_timeout: 2s
table:
  page_size: 25
  selected_columns: [Domain, Method]
  filter_case: insensitive
  sort_mode: multi
theme:
  bar_color: teal
logging:
  format: console
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.xlsx", cfg.Data.Path)
	assert.Equal(t, "A1:F40", cfg.Data.Range)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 25, cfg.Table.PageSize)
	assert.Equal(t, []string{"Domain", "Method"}, cfg.Table.SelectedColumns)
	assert.Equal(t, "teal", cfg.Theme.BarColor)
	assert.Equal(t, "firebrick", cfg.Theme.ActiveLineColor)

	opts := cfg.ViewOptions()
	assert.Equal(t, view.SortMulti, opts.SortMode)
	require.NotNil(t, opts.Filters)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EXDASH_DATA", "env.xlsx")
	t.Setenv("EXDASH_ADDR", ":7000")
	t.Setenv("EXDASH_PAGE_SIZE", "5")
	t.Setenv("EXDASH_SELECTED_COLUMNS", "Task, Year,")
	t.Setenv("EXDASH_WATCH", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env.xlsx", cfg.Data.Path)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Table.PageSize)
	assert.Equal(t, []string{"Task", "Year"}, cfg.Table.SelectedColumns)
	assert.True(t, cfg.Data.Watch)
}

func TestEnvOverrideErrors(t *testing.T) {
	t.Setenv("EXDASH_PAGE_SIZE", "ten")
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"page size":  func(c *Config) { c.Table.PageSize = 0 },
		"case":       func(c *Config) { c.Table.FilterCase = "upper" },
		"sort mode":  func(c *Config) { c.Table.SortMode = "random" },
		"language":   func(c *Config) { c.Table.Language = "not a tag!" },
		"log format": func(c *Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table: [oops"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	logger, err := cfg.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = cfg.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	cfg.Logging.Level = "loud"
	_, err = cfg.NewLogger(false)
	assert.Error(t, err)
}
