package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// formatExt maps output format names to file extensions.
var formatExt = map[string]string{
	"text":     ".txt",
	"json":     ".json",
	"markdown": ".md",
}

// writeOutput prints to stdout, or writes to a timestamped file when an
// output path was given.
func writeOutput(output string, of outputFlags) error {
	if of.Output == "" {
		fmt.Print(output)
		return nil
	}

	path := MakeOutputPath(of.Output, of.Format)
	dir := filepath.Dir(path)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	return nil
}

// MakeOutputPath inserts a timestamp into a user-provided output path.
// If the user provides "report.json", the result is "report_20260830_131504.json".
// If they provide a directory, the file is placed there with an auto-generated name.
func MakeOutputPath(userPath, format string) string {
	ts := time.Now().Format("20060102_150405")
	ext := formatExt[format]

	// Check if userPath is a directory
	info, err := os.Stat(userPath)
	if err == nil && info.IsDir() {
		return filepath.Join(userPath, "sqlpeek_"+ts+ext)
	}

	base := userPath
	existingExt := filepath.Ext(userPath)
	if existingExt != "" {
		base = strings.TrimSuffix(userPath, existingExt)
	} else {
		existingExt = ext
	}
	return base + "_" + ts + existingExt
}
