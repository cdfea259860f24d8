package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// resolveCompareKey returns the key to compare against the extracted
// one: the --key flag if given, then the KISHASH_KEY environment
// variable, then an interactive no-echo read when --prompt was set.
// Returns "" when no comparison key is available.
func resolveCompareKey(opts validateOptions) (string, error) {
	if opts.key != "" {
		return opts.key, nil
	}

	if envKey := os.Getenv(KeyEnvVar); envKey != "" {
		return envKey, nil
	}

	if !opts.prompt {
		return "", nil
	}

	secret, err := readSecret("Enter key to compare: ")
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

func readSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		// STDIN is a terminal, use secure input
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr) // Print newline after secret input
		return secret, err
	}

	// STDIN is not a terminal (piped), try to read from /dev/tty
	tty, err := os.Open("/dev/tty")
	if err != nil {
		if runtime.GOOS == "windows" {
			return nil, fmt.Errorf("key must be passed with --key or the %s environment variable when STDIN is piped", KeyEnvVar)
		}
		return nil, fmt.Errorf("cannot read key: STDIN is piped and /dev/tty is not available. Use --key or set %s", KeyEnvVar)
	}
	defer tty.Close()

	secret, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr) // Print newline after secret input
	return secret, err
}
