package models

import (
	"os"
	"path/filepath"
	"testing"
)

// GetFixturePath returns the absolute path of a CSV export under the repository's
// testdata directory. Test packages sit two levels below the root. The test fails
// right away when the fixture is missing, instead of later in the loader.
func GetFixturePath(t *testing.T, name string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	if err != nil {
		t.Fatalf("resolving fixture %s: %v", name, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s not found: %v", name, err)
	}
	return path
}
