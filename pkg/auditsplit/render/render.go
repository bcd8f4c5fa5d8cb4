// Package render writes one pruned copy of the source workbook per leader.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/group"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Default tab colours.
const (
	DefaultFlagColor  = "FF0000"
	DefaultClearColor = "00FF00"
)

// DefaultNameTemplate names output files after the leader.
const DefaultNameTemplate = "{{.Leader}}.xlsx"

// ErrOverwritesSource indicates an output path resolves to the source file.
var ErrOverwritesSource = errors.New("output would overwrite source workbook")

// Options configures rendering.
type Options struct {
	// FlagToken marks a QA result as needing attention (e.g. "DNC").
	FlagToken string
	// FlagColor is the RGB tab colour of sheets holding a flagged row.
	FlagColor string
	// ClearColor is the RGB tab colour of other data sheets. Empty leaves the tab unchanged.
	ClearColor string
	// FlaggedFirst moves flagged rows to the top of each table.
	FlaggedFirst bool
	// NameTemplate is a text/template producing the output file name.
	// Fields: .Leader (sanitised) and .Source (source file name without extension).
	NameTemplate string
	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// Renderer writes leader workbooks derived from one source.
type Renderer struct {
	src  *models.Source
	opts Options
	tmpl *template.Template
	log  *zap.Logger
	used map[string]bool
}

// NewRenderer creates a Renderer for the loaded source.
func NewRenderer(src *models.Source, opts Options) (*Renderer, error) {
	if opts.NameTemplate == "" {
		opts.NameTemplate = DefaultNameTemplate
	}
	tmpl, err := template.New("name").Option("missingkey=error").Parse(opts.NameTemplate)
	if err != nil {
		return nil, fmt.Errorf("invalid name template: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Renderer{
		src:  src,
		opts: opts,
		tmpl: tmpl,
		log:  log,
		used: make(map[string]bool),
	}, nil
}

// Render writes the workbook for one group into dir.
// The workbook is written to a temporary file next to its destination and
// renamed into place, so a failed render leaves any existing file intact.
func (r *Renderer) Render(g models.Group, dir string) (*models.Output, error) {
	name, err := r.OutputName(g.Leader)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name)
	if samePath(path, r.src.Path) {
		return nil, fmt.Errorf("%s: %w", path, ErrOverwritesSource)
	}

	return r.render(g, path)
}

func (r *Renderer) render(g models.Group, path string) (*models.Output, error) {
	f, err := excelize.OpenFile(r.src.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := &models.Output{Leader: g.Leader, Path: path}

	for _, table := range r.src.Tables {
		keep := g.BySheet(table.Sheet)
		if r.opts.FlaggedFirst {
			keep = group.FlaggedFirst(keep, r.opts.FlagToken)
		}

		rows := make([]int, 0, len(keep))
		for _, rec := range keep {
			rows = append(rows, rec.Row)
		}
		if err := PruneRows(f, table.Sheet, table.Bounds, rows); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", table.Sheet, err)
		}

		sheet := models.SheetOutput{
			Sheet:   table.Sheet,
			Rows:    len(keep),
			Flagged: group.AnyFlagged(keep, r.opts.FlagToken),
		}
		sheet.TabColor = r.tabColor(sheet.Flagged)
		if sheet.TabColor != "" {
			color := sheet.TabColor
			if err := f.SetSheetProps(table.Sheet, &excelize.SheetPropsOptions{TabColorRGB: &color}); err != nil {
				return nil, fmt.Errorf("sheet %q: set tab color: %w", table.Sheet, err)
			}
		}
		r.log.Debug("filtered sheet",
			zap.String("leader", g.Leader),
			zap.String("sheet", table.Sheet),
			zap.Int("kept", len(keep)),
			zap.Int("removed", table.Bounds.DataRows()-len(keep)),
			zap.Bool("flagged", sheet.Flagged),
			zap.String("tab_color", sheet.TabColor))

		out.Rows += sheet.Rows
		out.Flagged = out.Flagged || sheet.Flagged
		out.Sheets = append(out.Sheets, sheet)
	}

	for _, sheetName := range f.GetSheetList() {
		if err := FinalizeSheet(f, sheetName); err != nil {
			// Presentation is cosmetic; keep the workbook
			r.log.Warn("could not finalize sheet presentation",
				zap.String("sheet", sheetName), zap.Error(err))
		}
	}

	if err := saveAtomic(f, path); err != nil {
		return nil, err
	}
	return out, nil
}

// saveAtomic writes f to a temporary file in path's directory and renames
// it to path. The temporary file is removed on failure.
func saveAtomic(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	// The content type follows the destination extension, as with SaveAs
	f.Path = path
	err = tmp.Chmod(0644)
	if err == nil {
		err = f.Write(tmp)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func (r *Renderer) tabColor(flagged bool) string {
	if flagged {
		if r.opts.FlagColor == "" {
			return DefaultFlagColor
		}
		return r.opts.FlagColor
	}
	return r.opts.ClearColor
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
