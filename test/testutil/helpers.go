// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
// This is a convenience function for loading provider mock responses.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(MockDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// MockDataPath returns the absolute path of a file in docs/response-mock.
// Useful for adapters that read their data document from disk.
func MockDataPath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil, two levels below the project root
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "docs", "response-mock", filename)
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, timeStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", timeStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
func FloatPtr(f float64) *float64 {
	return &f
}
