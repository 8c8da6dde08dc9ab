// Package extensions resolves the extension mask used to filter a scan.
package extensions

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// configPath returns the path to the user's extension mask file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seqscan", "extensions.txt"), nil
}

// LoadCustomExtensions reads extensions from ~/.seqscan/extensions.txt,
// one per line, with # starting a comment line. Returns nil if the file
// does not exist.
func LoadCustomExtensions() ([]string, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open extensions file: %w", err)
	}
	defer f.Close()

	var exts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			exts = append(exts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading extensions file: %w", err)
	}

	return exts, nil
}

// Resolve returns the final extension mask for a scan, normalized to have
// no leading dots. Priority: CLI flag > custom file > nil. A nil mask
// means no filtering at all.
func Resolve(cliExtensions []string) ([]string, error) {
	if exts := normalize(cliExtensions); len(exts) > 0 {
		return exts, nil
	}

	custom, err := LoadCustomExtensions()
	if err != nil {
		return nil, err
	}
	if exts := normalize(custom); len(exts) > 0 {
		return exts, nil
	}

	return nil, nil
}

func normalize(exts []string) []string {
	var out []string
	for _, ext := range exts {
		ext = strings.Trim(strings.TrimSpace(ext), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
