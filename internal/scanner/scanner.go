// Package scanner provides directory listing and extension-mask filtering.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Result holds the output of scanning a directory.
type Result struct {
	// Names are the bare filenames that passed the mask, in directory
	// listing order.
	Names []string
	// SkippedCount is the number of files excluded by the extension mask.
	SkippedCount int
}

// Scan lists the given directory (non-recursive) and returns the
// filenames that pass the extension mask, plus a count of files the mask
// excluded. An empty or nil mask passes everything. Extension matching is
// against the text after the filename's last dot, case-sensitive; mask
// entries may be written with or without a leading dot.
//
// Subdirectories are skipped and not counted. The underlying os errors
// are preserved through wrapping, so errors.Is against fs.ErrNotExist and
// fs.ErrPermission distinguishes a missing directory from an unreadable
// one. An empty directory is not an error.
func Scan(dir string, extensions []string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	mask := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.Trim(ext, ".")
		if ext != "" {
			mask[ext] = true
		}
	}

	result := &Result{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(mask) > 0 {
			ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
			if !mask[ext] {
				result.SkippedCount++
				continue
			}
		}
		result.Names = append(result.Names, entry.Name())
	}

	return result, nil
}
