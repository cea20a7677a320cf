package main

import (
	"fmt"
	"os"
	"strings"

	"logsense/config"
)

// readInput resolves the text to process: positional args joined, or the
// contents of the file named by -f.
func readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	return "", fmt.Errorf("no input: pass text as arguments or a file with -f")
}

// loadConfig resolves service configuration, preferring an explicit
// --config path over the default search paths.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
