package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// OutOfDate returns the names of files whose content in dir differs from the
// generated content, including files missing from dir.
func OutOfDate(files []GeneratedFile, dir string) ([]string, error) {
	var stale []string

	for _, file := range files {
		current, err := os.ReadFile(filepath.Join(dir, file.Filename))
		if errors.Is(err, os.ErrNotExist) {
			stale = append(stale, file.Filename)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if !bytes.Equal(current, file.Content) {
			stale = append(stale, file.Filename)
		}
	}

	return stale, nil
}
