package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit"
	"gopkg.in/yaml.v3"
)

// writeManifest writes the run report as JSON or YAML, chosen by extension.
func writeManifest(path string, report *auditsplit.Report) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(report)
	default:
		data, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
