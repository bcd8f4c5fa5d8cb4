package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/xuri/excelize/v2"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "flag.color")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// rgbRegex validates RGB (or ARGB) hex colours without a leading '#'
var rgbRegex = regexp.MustCompile(`^([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"console", "json"}
}

// ValidManifestExtensions returns the list of valid manifest file extensions
func ValidManifestExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateTable()...)
	errors = append(errors, c.validateColumns()...)
	errors = append(errors, c.validateFlag()...)

	if !slices.Contains(ValidLogFormats(), c.Log.Format) {
		errors = append(errors, ValidationError{
			Field:   "log.format",
			Value:   c.Log.Format,
			Message: fmt.Sprintf("must be one of %v", ValidLogFormats()),
		})
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if c.Output.NameTemplate == "" {
		errors = append(errors, ValidationError{
			Field:   "output.name_template",
			Value:   c.Output.NameTemplate,
			Message: "must not be empty",
		})
	} else if _, err := template.New("name").Parse(c.Output.NameTemplate); err != nil {
		errors = append(errors, ValidationError{
			Field:   "output.name_template",
			Value:   c.Output.NameTemplate,
			Message: err.Error(),
		})
	}

	if c.Output.Manifest != "" {
		ext := strings.ToLower(filepath.Ext(c.Output.Manifest))
		if !slices.Contains(ValidManifestExtensions(), ext) {
			errors = append(errors, ValidationError{
				Field:   "output.manifest",
				Value:   c.Output.Manifest,
				Message: fmt.Sprintf("extension must be one of %v", ValidManifestExtensions()),
			})
		}
	}

	return errors
}

func (c *Config) validateTable() []ValidationError {
	var errors []ValidationError

	if c.Table.AnchorColumn != "" {
		if _, err := excelize.ColumnNameToNumber(c.Table.AnchorColumn); err != nil {
			errors = append(errors, ValidationError{
				Field:   "table.anchor_column",
				Value:   c.Table.AnchorColumn,
				Message: "must be a column letter such as B",
			})
		}
	}

	if c.Table.Range != "" {
		if _, err := models.ParseBounds(c.Table.Range); err != nil {
			errors = append(errors, ValidationError{
				Field:   "table.range",
				Value:   c.Table.Range,
				Message: err.Error(),
			})
		}
	}

	if strings.TrimSpace(c.Table.Unassigned) == "" {
		errors = append(errors, ValidationError{
			Field:   "table.unassigned",
			Value:   c.Table.Unassigned,
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateColumns() []ValidationError {
	var errors []ValidationError

	if c.Columns.Leader == "" && len(c.Columns.LeaderKeywords) == 0 {
		errors = append(errors, ValidationError{
			Field:   "columns.leader",
			Value:   c.Columns.Leader,
			Message: "a header name or keywords are required",
		})
	}
	if c.Columns.Result == "" && len(c.Columns.ResultKeywords) == 0 {
		errors = append(errors, ValidationError{
			Field:   "columns.result",
			Value:   c.Columns.Result,
			Message: "a header name or keywords are required",
		})
	}

	return errors
}

func (c *Config) validateFlag() []ValidationError {
	var errors []ValidationError

	if c.Flag.Token == "" {
		errors = append(errors, ValidationError{
			Field:   "flag.token",
			Value:   c.Flag.Token,
			Message: "must not be empty",
		})
	}
	if !rgbRegex.MatchString(c.Flag.Color) {
		errors = append(errors, ValidationError{
			Field:   "flag.color",
			Value:   c.Flag.Color,
			Message: "must be a hex RGB colour such as FF0000",
		})
	}
	if c.Flag.ClearColor != "" && !rgbRegex.MatchString(c.Flag.ClearColor) {
		errors = append(errors, ValidationError{
			Field:   "flag.clear_color",
			Value:   c.Flag.ClearColor,
			Message: "must be a hex RGB colour such as 00FF00, or empty",
		})
	}

	return errors
}
