// Package config loads the dashboard configuration from YAML, the
// environment and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exdash-go/pkg/exdash"
	"github.com/ukaji3/exdash-go/pkg/exdash/figure"
	"github.com/ukaji3/exdash-go/pkg/exdash/filter"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "exdash.yaml"

// Filter case options.
const (
	CaseSensitive   = "sensitive"
	CaseInsensitive = "insensitive"
)

// Config holds all dashboard settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Server  ServerConfig  `yaml:"server"`
	Table   TableConfig   `yaml:"table"`
	Theme   figure.Theme  `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig selects the spreadsheet and the region to load.
type DataConfig struct {
	Path            string   `yaml:"path"`
	Sheet           string   `yaml:"sheet"`
	Range           string   `yaml:"range"`
	MarkdownColumns []string `yaml:"markdown_columns"`
	IncludeLinks    *bool    `yaml:"include_links"`
	UsePrintArea    bool     `yaml:"use_print_area"`
	// Watch reloads the dataset when the file changes.
	Watch bool `yaml:"watch"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TableConfig configures the data table and its derived views.
type TableConfig struct {
	PageSize        int      `yaml:"page_size"`
	SelectedColumns []string `yaml:"selected_columns"`
	FilterCase      string   `yaml:"filter_case"`
	SortMode        string   `yaml:"sort_mode"`
	// Language is the BCP 47 tag used to collate text when sorting.
	Language string `yaml:"language"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path:            "data/ArticlesByCategory.xlsx",
			MarkdownColumns: []string{"Cite"},
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8050",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Table: TableConfig{
			PageSize:        10,
			SelectedColumns: []string{"Domain", "Task"},
			FilterCase:      CaseSensitive,
			SortMode:        view.SortSingle,
			Language:        "und",
		},
		Theme: figure.DefaultTheme(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.Theme = cfg.Theme.WithDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("EXDASH_DATA"); v != "" {
		c.Data.Path = v
	}
	if v := os.Getenv("EXDASH_SHEET"); v != "" {
		c.Data.Sheet = v
	}
	if v := os.Getenv("EXDASH_RANGE"); v != "" {
		c.Data.Range = v
	}
	if v := os.Getenv("EXDASH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("EXDASH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EXDASH_SELECTED_COLUMNS"); v != "" {
		c.Table.SelectedColumns = splitList(v)
	}
	if v := os.Getenv("EXDASH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EXDASH_PAGE_SIZE: %w", err)
		}
		c.Table.PageSize = n
	}
	if v := os.Getenv("EXDASH_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EXDASH_WATCH: %w", err)
		}
		c.Data.Watch = b
	}
	return nil
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	if c.Table.PageSize <= 0 {
		return fmt.Errorf("table.page_size must be positive, got %d", c.Table.PageSize)
	}
	switch c.Table.FilterCase {
	case CaseSensitive, CaseInsensitive:
	default:
		return fmt.Errorf("table.filter_case must be %q or %q, got %q", CaseSensitive, CaseInsensitive, c.Table.FilterCase)
	}
	switch c.Table.SortMode {
	case view.SortSingle, view.SortMulti:
	default:
		return fmt.Errorf("table.sort_mode must be %q or %q, got %q", view.SortSingle, view.SortMulti, c.Table.SortMode)
	}
	if _, err := language.Parse(c.Table.Language); err != nil {
		return fmt.Errorf("table.language: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// LoadOptions returns the options for exdash.Load.
func (c *Config) LoadOptions() exdash.Options {
	return exdash.Options{
		SheetName:       c.Data.Sheet,
		Range:           c.Data.Range,
		MarkdownColumns: c.Data.MarkdownColumns,
		IncludeLinks:    c.Data.IncludeLinks,
		UsePrintArea:    c.Data.UsePrintArea,
	}
}

// ViewOptions returns the options for view.Derive, with a fresh filter
// compiler. Callers should build it once and reuse it.
func (c *Config) ViewOptions() view.Options {
	tag, err := language.Parse(c.Table.Language)
	if err != nil {
		tag = language.Und
	}
	return view.Options{
		SortMode: c.Table.SortMode,
		Language: tag,
		Filters:  filter.NewCompiler(c.Table.FilterCase == CaseInsensitive),
	}
}

// TableOptions returns the table description options.
func (c *Config) TableOptions() figure.TableOptions {
	return figure.TableOptions{
		PageSize:        c.Table.PageSize,
		SelectedColumns: c.Table.SelectedColumns,
		FilterCase:      c.Table.FilterCase,
		SortMode:        c.Table.SortMode,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
