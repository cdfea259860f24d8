package main

import (
	"fmt"
	"os"
	"strings"
)

// extractKeyFromFile reads the document at filename and reconstructs
// the embedded key from the fixed per-line positions. The document
// must contain exactly NumLines lines of exactly LineLength characters.
func extractKeyFromFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file '%s' not found", filename)
		}
		return "", fmt.Errorf("failed to read '%s': %w", filename, err)
	}

	// The final newline delimits the last line rather than opening an
	// empty one
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != NumLines {
		return "", fmt.Errorf("file must contain %d lines but contains %d", NumLines, len(lines))
	}

	key := make([]byte, 0, KeyLength)
	for i, line := range lines {
		if len(line) != LineLength {
			return "", fmt.Errorf("line %d has %d characters; expected %d", i+1, len(line), LineLength)
		}
		key = append(key, line[positions[i]])
	}

	return string(key), nil
}
