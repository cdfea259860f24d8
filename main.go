package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	Version = "1.0.0"

	// DefaultFilename is the document path used when --file is not given
	DefaultFilename = "hash.hex"

	// Environment variable holding the comparison key for validate
	KeyEnvVar = "KISHASH_KEY"
)

// generateOptions holds the generate command parameters
type generateOptions struct {
	file string
	key  string
}

// validateOptions holds the validate command parameters
type validateOptions struct {
	file   string
	key    string
	prompt bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("no command specified")
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		opts, err := parseGenerateArgs(args)
		if err != nil {
			return err
		}
		return cmdGenerate(opts, os.Stdout)
	case "validate":
		opts, err := parseValidateArgs(args)
		if err != nil {
			return err
		}
		return cmdValidate(opts, os.Stdout)
	case "--help", "-h":
		printUsage()
		return nil
	case "--version", "-v":
		fmt.Fprintf(os.Stderr, "kishash version %s\n", Version)
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func cmdGenerate(opts generateOptions, out io.Writer) error {
	key := opts.key
	if key == "" {
		var err error
		key, err = generateSecretKey()
		if err != nil {
			return err
		}
	} else if err := checkKeySyntax(key); err != nil {
		return err
	}

	if err := writeFileWithKey(key, opts.file); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n[OK] File '%s' written successfully.\n", opts.file)
	fmt.Fprintf(out, "[OK] Generated secret key: %s\n\n", key)
	return nil
}

func cmdValidate(opts validateOptions, out io.Writer) error {
	extracted, err := extractKeyFromFile(opts.file)
	if err != nil {
		// Structural failures are reported to the user, not fatal
		fmt.Fprintf(out, "[X] Error: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "Extracted key: %s\n", extracted)

	compare, err := resolveCompareKey(opts)
	if err != nil {
		return err
	}

	switch {
	case compare == "":
		fmt.Fprintf(out, "[!] No key provided for comparison. Extraction finished.\n")
	case compare == extracted:
		fmt.Fprintf(out, "[OK] The provided key MATCHES the file.\n")
	default:
		fmt.Fprintf(out, "[X] The provided key DOES NOT MATCH the file.\n")
	}

	return nil
}

func parseGenerateArgs(args []string) (generateOptions, error) {
	opts := generateOptions{file: DefaultFilename}

	for i := 0; i < len(args); i++ {
		if value, skip, ok, err := stringFlag(args, i, "--file", "-f"); err != nil {
			return opts, err
		} else if ok {
			opts.file = value
			i += skip
			continue
		}

		if value, skip, ok, err := stringFlag(args, i, "--key", "-k"); err != nil {
			return opts, err
		} else if ok {
			opts.key = value
			i += skip
			continue
		}

		return opts, fmt.Errorf("unknown argument: %s", args[i])
	}

	return opts, nil
}

func parseValidateArgs(args []string) (validateOptions, error) {
	opts := validateOptions{file: DefaultFilename}

	for i := 0; i < len(args); i++ {
		if args[i] == "--prompt" || args[i] == "-p" {
			opts.prompt = true
			continue
		}

		if value, skip, ok, err := stringFlag(args, i, "--file", "-f"); err != nil {
			return opts, err
		} else if ok {
			opts.file = value
			i += skip
			continue
		}

		if value, skip, ok, err := stringFlag(args, i, "--key", "-k"); err != nil {
			return opts, err
		} else if ok {
			opts.key = value
			i += skip
			continue
		}

		return opts, fmt.Errorf("unknown argument: %s", args[i])
	}

	return opts, nil
}

// stringFlag matches args[i] against a long/short flag pair and returns
// its value. Accepts --flag=value, -f=value and the space-separated
// forms; skip reports how many extra arguments were consumed.
func stringFlag(args []string, i int, long, short string) (value string, skip int, ok bool, err error) {
	arg := args[i]

	for _, name := range []string{long, short} {
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"="), 0, true, nil
		}
		if arg == name {
			if i+1 >= len(args) {
				return "", 0, false, fmt.Errorf("%s requires a value", name)
			}
			return args[i+1], 1, true, nil
		}
	}

	return "", 0, false, nil
}

func printUsage() {
	usage := `kishash - Generate and validate hash.hex files with an embedded secret key

USAGE:
    kishash <command> [options]

COMMANDS:
    generate         Write a new document with an embedded secret key
    validate         Extract the embedded key from a document
    --help, -h       Show this help message
    --version, -v    Show version information

OPTIONS:
    --file=PATH, -f PATH    Document path (default: hash.hex)
    --key=KEY, -k KEY       generate: embed KEY instead of a random one
                            validate: compare KEY against the extracted key
    --prompt, -p            validate: read the comparison key from the
                            terminal without echo

KEY RESOLUTION:
    For validate, the comparison key resolves from --key, then the
    KISHASH_KEY environment variable, then --prompt. Without any of
    them the extracted key is only reported.

FORMAT:
    10 lines of 128 lowercase hex characters, newline-terminated. One
    key character sits at a fixed position in each line; every other
    character is random.

EXAMPLES:
    # Write hash.hex with a fresh key
    kishash generate

    # Embed a chosen key in another file
    kishash generate --file=other.hex --key=0123456789

    # Extract without comparing
    kishash validate

    # Compare against a known key
    kishash validate --file=other.hex --key=0123456789

`
	fmt.Fprint(os.Stderr, usage)
}
