// Package genome reads and writes organism files: plain-text genome
// listings in either the symbol encoding (one string of characters) or
// the name encoding (one instruction name per line).
package genome

import (
	"fmt"
	"os"
	"strings"

	"genomekit/internal/instset"
)

// ReadAll returns the entire contents of the file at path.
func ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read genome file: %w", err)
	}
	return string(data), nil
}

// WriteString writes s to the file at path, appending a trailing newline
// only when s does not already end with one.
func WriteString(path, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return fmt.Errorf("write genome file: %w", err)
	}
	return nil
}

// SplitNames reads the file at path and splits it into trimmed entries on
// delim. An empty delim splits on newlines.
func SplitNames(path, delim string) ([]string, error) {
	text, err := ReadAll(path)
	if err != nil {
		return nil, err
	}
	if delim == "" {
		delim = "\n"
	}
	parts := strings.Split(text, delim)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// DecodeFile converts the symbol-encoded organism at path into its name
// listing. Surrounding whitespace in the file is ignored; every remaining
// rune is a genome symbol.
func DecodeFile(t *instset.Table, path string) (string, error) {
	text, err := ReadAll(path)
	if err != nil {
		return "", err
	}
	return t.CharsToNames(strings.TrimSpace(text))
}

// EncodeFile converts the name-encoded organism at path into its symbol
// string. Blank lines in the file are skipped.
func EncodeFile(t *instset.Table, path string) (string, error) {
	names, err := SplitNames(path, "")
	if err != nil {
		return "", err
	}
	return t.NamesToChars(names)
}
