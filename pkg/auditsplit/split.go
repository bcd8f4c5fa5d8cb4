package auditsplit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/group"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/render"
	"go.uber.org/zap"
)

// Failure records a leader whose workbook could not be written.
type Failure struct {
	Leader string `json:"leader" yaml:"leader"`
	Error  string `json:"error" yaml:"error"`
}

// Report summarises a split run.
type Report struct {
	// Source is the input workbook name.
	Source string `json:"source" yaml:"source"`
	// OutputDir is the directory holding the outputs.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// Outputs lists written workbooks, sorted by leader.
	Outputs []models.Output `json:"outputs" yaml:"outputs"`
	// Failures lists leaders that could not be written.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Split loads the workbook at path and writes one workbook per leader.
//
// Unless opts.FailFast is set, a leader that fails to render is logged and
// skipped; the returned error then joins every WriteError while the report
// still lists the workbooks that were written.
func Split(path string, opts Options) (*Report, error) {
	log := opts.logger()

	src, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, NewFileError("mkdir", outDir, err)
	}

	report := &Report{Source: src.BookName, OutputDir: outDir}

	groups := group.Partition(src.Records(), group.Options{Unassigned: opts.Unassigned})
	if len(groups) == 0 {
		log.Warn("no audit rows found", zap.String("source", src.BookName))
		return report, nil
	}
	leaders := make([]string, 0, len(groups))
	for _, g := range groups {
		leaders = append(leaders, g.Leader)
	}
	log.Info("found audit leaders", zap.Strings("leaders", leaders))

	renderOpts := opts.Render
	renderOpts.Logger = log
	renderer, err := render.NewRenderer(src, renderOpts)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, g := range groups {
		log.Info("processing workbook for audit leader",
			zap.String("leader", g.Leader), zap.Int("rows", len(g.Records)))

		out, err := renderer.Render(g, outDir)
		if err != nil {
			werr := NewWriteError(g.Leader, outDir, err)
			if opts.FailFast {
				return report, werr
			}
			log.Error("failed to write workbook", zap.String("leader", g.Leader), zap.Error(err))
			report.Failures = append(report.Failures, Failure{Leader: g.Leader, Error: err.Error()})
			errs = append(errs, werr)
			continue
		}
		report.Outputs = append(report.Outputs, *out)
		log.Info("wrote workbook",
			zap.String("leader", g.Leader),
			zap.String("path", out.Path),
			zap.Bool("flagged", out.Flagged))
	}

	log.Info("processing complete",
		zap.Int("written", len(report.Outputs)),
		zap.Int("failed", len(report.Failures)))
	return report, errors.Join(errs...)
}
