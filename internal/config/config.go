// Package config loads auditsplit settings from flags, environment and an
// optional YAML file via viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/group"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/parser"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/render"
	"github.com/xuri/excelize/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. AUDITSPLIT_FLAG_TOKEN.
const EnvPrefix = "AUDITSPLIT"

// DefaultConfigName is the config file looked up in the working directory.
const DefaultConfigName = "auditsplit"

// Config represents the complete auditsplit configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Table   TableConfig   `mapstructure:"table"`
	Columns ColumnsConfig `mapstructure:"columns"`
	Flag    FlagConfig    `mapstructure:"flag"`
	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
}

// OutputConfig controls where and how leader workbooks are written
type OutputConfig struct {
	// Dir is the output directory (default: directory of the input file)
	Dir string `mapstructure:"dir"`
	// NameTemplate is a Go text/template for file names.
	// Fields: .Leader, .Source (default: "{{.Leader}}.xlsx")
	NameTemplate string `mapstructure:"name_template"`
	// Manifest is an optional .json or .yaml report path
	Manifest string `mapstructure:"manifest"`
}

// TableConfig controls which sheets are read and where the table starts
type TableConfig struct {
	// SheetPrefix selects sheets by name prefix, e.g. "QA-ID-" (default: all sheets)
	SheetPrefix string `mapstructure:"sheet_prefix"`
	// Anchor is text above the table, e.g. "Detailed Results" (default: none)
	Anchor string `mapstructure:"anchor"`
	// AnchorColumn limits the anchor search to one column letter, e.g. "B"
	AnchorColumn string `mapstructure:"anchor_column"`
	// Range sets explicit table bounds such as "A1:F200", skipping detection
	Range string `mapstructure:"range"`
	// Unassigned names the workbook for rows with a blank leader (default: "Unassigned")
	Unassigned string `mapstructure:"unassigned"`
}

// ColumnsConfig names the leader and QA result headers
type ColumnsConfig struct {
	// Leader is the audit leader header (default: "Audit Leader")
	Leader string `mapstructure:"leader"`
	// LeaderKeywords must all appear in a header for a fallback match
	LeaderKeywords []string `mapstructure:"leader_keywords"`
	// Result is the QA result header (default: "QA Result")
	Result string `mapstructure:"result"`
	// ResultKeywords must all appear in a header for a fallback match
	ResultKeywords []string `mapstructure:"result_keywords"`
	// ResultExclude disqualifies a fallback header containing any of these
	ResultExclude []string `mapstructure:"result_exclude"`
}

// FlagConfig controls QA flagging and tab colours
type FlagConfig struct {
	// Token marks a QA result as needing attention (default: "DNC")
	Token string `mapstructure:"token"`
	// Color is the RGB tab colour of flagged sheets (default: "FF0000")
	Color string `mapstructure:"color"`
	// ClearColor is the RGB tab colour of other data sheets (default: "00FF00", "" = unchanged)
	ClearColor string `mapstructure:"clear_color"`
}

// RenderConfig controls output row order and failure handling
type RenderConfig struct {
	// FlaggedFirst moves flagged rows to the top of each table (default: false)
	FlaggedFirst bool `mapstructure:"flagged_first"`
	// FailFast aborts at the first leader that fails (default: false)
	FailFast bool `mapstructure:"fail_fast"`
}

// LogConfig controls logging
type LogConfig struct {
	// Verbose enables debug logging (default: false)
	Verbose bool `mapstructure:"verbose"`
	// Format is "console" or "json" (default: "console")
	Format string `mapstructure:"format"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			NameTemplate: render.DefaultNameTemplate,
		},
		Table: TableConfig{
			Unassigned: group.DefaultUnassigned,
		},
		Columns: ColumnsConfig{
			Leader:         "Audit Leader",
			LeaderKeywords: []string{"audit leader"},
			Result:         "QA Result",
		},
		Flag: FlagConfig{
			Token:      "DNC",
			Color:      render.DefaultFlagColor,
			ClearColor: render.DefaultClearColor,
		},
		Log: LogConfig{
			Format: "console",
		},
	}
}

// SetDefaults registers default values and environment overrides on v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.name_template", defaults.Output.NameTemplate)
	v.SetDefault("output.manifest", defaults.Output.Manifest)

	v.SetDefault("table.sheet_prefix", defaults.Table.SheetPrefix)
	v.SetDefault("table.anchor", defaults.Table.Anchor)
	v.SetDefault("table.anchor_column", defaults.Table.AnchorColumn)
	v.SetDefault("table.range", defaults.Table.Range)
	v.SetDefault("table.unassigned", defaults.Table.Unassigned)

	v.SetDefault("columns.leader", defaults.Columns.Leader)
	v.SetDefault("columns.leader_keywords", defaults.Columns.LeaderKeywords)
	v.SetDefault("columns.result", defaults.Columns.Result)
	v.SetDefault("columns.result_keywords", defaults.Columns.ResultKeywords)
	v.SetDefault("columns.result_exclude", defaults.Columns.ResultExclude)

	v.SetDefault("flag.token", defaults.Flag.Token)
	v.SetDefault("flag.color", defaults.Flag.Color)
	v.SetDefault("flag.clear_color", defaults.Flag.ClearColor)

	v.SetDefault("render.flagged_first", defaults.Render.FlaggedFirst)
	v.SetDefault("render.fail_fast", defaults.Render.FailFast)

	v.SetDefault("log.verbose", defaults.Log.Verbose)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads the config file at path into v. With an empty path,
// ./auditsplit.yaml is read when present.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Options converts the configuration into split options. It fails when
// the anchor column or table range cannot be parsed.
func (c *Config) Options() (auditsplit.Options, error) {
	opts := auditsplit.DefaultOptions()

	opts.OutputDir = c.Output.Dir
	opts.SheetPrefix = c.Table.SheetPrefix
	opts.Unassigned = c.Table.Unassigned
	opts.FailFast = c.Render.FailFast

	opts.Table = parser.TableParams{
		Anchor: c.Table.Anchor,
		Leader: parser.HeaderMatcher{
			Name:    c.Columns.Leader,
			Include: c.Columns.LeaderKeywords,
		},
		Result: parser.HeaderMatcher{
			Name:    c.Columns.Result,
			Include: c.Columns.ResultKeywords,
			Exclude: c.Columns.ResultExclude,
		},
	}
	if c.Table.AnchorColumn != "" {
		col, err := excelize.ColumnNameToNumber(c.Table.AnchorColumn)
		if err != nil {
			return auditsplit.Options{}, fmt.Errorf("table.anchor_column: %w", err)
		}
		opts.Table.AnchorCol = col
	}
	if c.Table.Range != "" {
		bounds, err := models.ParseBounds(c.Table.Range)
		if err != nil {
			return auditsplit.Options{}, fmt.Errorf("table.range: %w", err)
		}
		opts = opts.WithRange(bounds)
	}

	opts.Render = render.Options{
		FlagToken:    c.Flag.Token,
		FlagColor:    c.Flag.Color,
		ClearColor:   c.Flag.ClearColor,
		FlaggedFirst: c.Render.FlaggedFirst,
		NameTemplate: c.Output.NameTemplate,
	}
	return opts, nil
}
