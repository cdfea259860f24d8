package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// Document layout
	NumLines   = 10
	LineLength = 128

	// KeyLength is the number of hex characters embedded in a document,
	// one per line
	KeyLength = NumLines
)

// positions holds the character offset of the embedded key character
// for each line of the document
var positions = [NumLines]int{0, 4, 8, 16, 32, 64, 96, 112, 120, 127}

// generateSecretKey generates a 10-character lowercase hex secret key
func generateSecretKey() (string, error) {
	buf := make([]byte, KeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// randomHexLine generates a random hex line of LineLength characters (0-9a-f)
func randomHexLine() (string, error) {
	buf := make([]byte, LineLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random line: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// checkKeySyntax validates a user-supplied key: exactly KeyLength
// lowercase hex characters
func checkKeySyntax(key string) error {
	if len(key) != KeyLength {
		return fmt.Errorf("key must be exactly %d hex characters", KeyLength)
	}
	for _, c := range key {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("key must contain only lowercase hex characters (0-9, a-f)")
		}
	}
	return nil
}
