// Package filex has small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will contain the database file
// at dsn and returns it. In-memory and "file:" URI DSNs are returned as ""
// without touching the filesystem.
func EnsureParentDir(dsn string) (string, error) {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return "", nil
	}

	dir, err := filepath.Abs(filepath.Dir(dsn))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dsn, err)
	}

	// The database holds the session token.
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
