package main

import (
	"fmt"
	"os"
	"strings"
)

// writeFileWithKey creates the document at filename with NumLines
// random hex lines, embedding one key character per line at its fixed
// position. The file is created or overwritten.
func writeFileWithKey(key, filename string) error {
	if len(key) != KeyLength {
		return fmt.Errorf("secret key must be exactly %d hex characters", KeyLength)
	}

	var doc strings.Builder
	doc.Grow(NumLines * (LineLength + 1))

	for i := 0; i < NumLines; i++ {
		line, err := randomHexLine()
		if err != nil {
			return err
		}

		// Replace the character at the fixed position with the key character
		raw := []byte(line)
		raw[positions[i]] = key[i]

		doc.Write(raw)
		doc.WriteByte('\n')
	}

	if err := os.WriteFile(filename, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", filename, err)
	}

	return nil
}
