package ledgerfmt

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
)

// Extensions lists the file extensions recognized as ledger files.
var Extensions = []string{".ledger", ".journal", ".hledger", ".dat"}

// IsLedgerFile reports whether the name has a ledger file extension.
func IsLedgerFile(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// FindLedgers returns the ledger files to process for path. A file is
// returned as is, whatever its extension. A directory is walked for ledger
// files, skipping hidden directories.
func FindLedgers(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not find ledger %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var ledgers []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsLedgerFile(p) {
			ledgers = append(ledgers, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not list ledgers in %q: %w", path, err)
	}
	return ledgers, nil
}

// LoadFile reads a ledger file.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read ledger file %q: %w", path, err)
	}
	return string(data), nil
}

// SaveFile replaces the content of a ledger file. The file is either fully
// replaced or left untouched.
func SaveFile(path, text string) error {
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	return nil
}
