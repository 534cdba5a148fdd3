// Package sidecar writes extraction results as JSON documents, one per
// input file.
package sidecar

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Encode writes the result as indented JSON. HTML escaping is disabled so
// CJK and other non-ASCII heading text is written literally.
func Encode(w io.Writer, res outline.Result) error {
	if res.Outline == nil {
		res.Outline = []outline.Heading{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// Write stores the result at path, creating parent directories as needed.
func Write(path string, res outline.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sidecar: %w", err)
	}
	if err := Encode(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PathFor maps an input filename to its sidecar path in outputDir:
// "report.pdf" becomes "<outputDir>/report.json".
func PathFor(outputDir, filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".json")
}
