// Package auditsplit splits a consolidated audit workbook into one
// workbook per audit leader.
package auditsplit

import (
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/group"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/parser"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/render"
	"go.uber.org/zap"
)

// Options configures loading and splitting.
type Options struct {
	// OutputDir receives the leader workbooks.
	// If empty, defaults to the directory of the source file.
	OutputDir string
	// SheetPrefix selects the sheets holding audit tables. Empty selects every sheet.
	SheetPrefix string
	// Table configures header and data row location.
	Table parser.TableParams
	// Unassigned names the group for rows with a blank leader.
	Unassigned string
	// Render configures output workbooks.
	Render render.Options
	// FailFast aborts the run at the first leader that fails to render.
	// Otherwise the failure is recorded and the remaining leaders are written.
	FailFast bool
	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default split options.
func DefaultOptions() Options {
	return Options{
		Table:      parser.DefaultTableParams(),
		Unassigned: group.DefaultUnassigned,
		Render: render.Options{
			FlagToken:    "DNC",
			FlagColor:    render.DefaultFlagColor,
			ClearColor:   render.DefaultClearColor,
			NameTemplate: render.DefaultNameTemplate,
		},
	}
}

// WithRange returns a copy of o using explicit table bounds instead of detection.
func (o Options) WithRange(bounds models.TableBounds) Options {
	o.Table.Range = &bounds
	return o
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
