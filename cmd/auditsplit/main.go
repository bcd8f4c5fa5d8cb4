// Package main provides the CLI entry point for auditsplit-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/auditsplit-go/internal/config"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// flagKeys maps CLI flags to config keys.
var flagKeys = map[string]string{
	"output-dir":    "output.dir",
	"name-template": "output.name_template",
	"manifest":      "output.manifest",
	"sheet-prefix":  "table.sheet_prefix",
	"anchor":        "table.anchor",
	"anchor-column": "table.anchor_column",
	"range":         "table.range",
	"leader-header": "columns.leader",
	"result-header": "columns.result",
	"flag-token":    "flag.token",
	"flagged-first": "render.flagged_first",
	"fail-fast":     "render.fail_fast",
	"verbose":       "log.verbose",
	"log-format":    "log.format",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "auditsplit [input.xlsx]",
		Short: "Split an audit workbook into one workbook per audit leader",
		Long: `auditsplit-go reads a consolidated audit workbook and writes one copy per
audit leader holding only that leader's rows. Formatting is kept, and each
data sheet's tab turns red when it holds a DNC result, green otherwise.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(v, configPath); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd, args[0], cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./auditsplit.yaml if present)")
	flags.StringP("output-dir", "o", "", "Directory for leader workbooks (default: input directory)")
	flags.String("name-template", "", "Output file name template, e.g. \"{{.Source}} - {{.Leader}}.xlsx\"")
	flags.String("manifest", "", "Write a .json or .yaml report of the run")
	flags.String("sheet-prefix", "", "Only read sheets whose name starts with this prefix")
	flags.String("anchor", "", "Search for the header below the cell containing this text")
	flags.String("anchor-column", "", "Column letter holding the anchor text")
	flags.String("range", "", "Explicit table range, e.g. A1:F200")
	flags.String("leader-header", "", "Audit leader column header")
	flags.String("result-header", "", "QA result column header")
	flags.String("flag-token", "", "QA result text that turns a tab red")
	flags.Bool("flagged-first", false, "Move flagged rows to the top of each table")
	flags.Bool("fail-fast", false, "Stop at the first leader that fails to write")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-format", "", "Log format: console or json")

	for name, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, cfg *config.Config) error {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = logger

	report, splitErr := auditsplit.Split(inputPath, opts)
	if report == nil {
		return fmt.Errorf("split failed: %w", splitErr)
	}

	if cfg.Output.Manifest != "" {
		if err := writeManifest(cfg.Output.Manifest, report); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(report))

	if splitErr != nil {
		return fmt.Errorf("split failed: %w", splitErr)
	}
	return nil
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
