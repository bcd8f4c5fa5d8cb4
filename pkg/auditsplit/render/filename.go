package render

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\n\r]+`)

// SanitizeFilename makes a string safe for use as a Windows file name.
func SanitizeFilename(name string) string {
	clean := strings.TrimSpace(invalidFileChars.ReplaceAllString(name, "_"))
	if clean == "" {
		return "_"
	}
	return clean
}

type nameData struct {
	Leader string
	Source string
}

// OutputName returns the file name for a leader's workbook. Names already
// handed out by this Renderer get a " (n)" suffix; comparison ignores case.
func (r *Renderer) OutputName(leader string) (string, error) {
	var b strings.Builder
	data := nameData{
		Leader: SanitizeFilename(leader),
		Source: strings.TrimSuffix(r.src.BookName, filepath.Ext(r.src.BookName)),
	}
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render file name for %q: %w", leader, err)
	}

	name := b.String()
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q for leader %q", name, leader)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 2; r.used[strings.ToLower(candidate)]; n++ {
		candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
	}
	r.used[strings.ToLower(candidate)] = true
	return candidate, nil
}
