package db

import (
	"path/filepath"
	"testing"
)

func TestPragmaStatement(t *testing.T) {
	tests := map[string]string{
		"busy_timeout(5000)": "busy_timeout=5000",
		"foreign_keys(ON)":   "foreign_keys=ON",
		"plain":              "plain",
	}
	for in, want := range tests {
		if got := pragmaStatement(in); got != want {
			t.Errorf("pragmaStatement(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite3")
	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	for i := 0; i < 2; i++ {
		if err := Migrate(database); err != nil {
			t.Fatalf("Migrate run %d: %v", i+1, err)
		}
	}

	var mode string
	if err := database.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("reading journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("expected wal journal mode, got %q", mode)
	}
}

func TestContainsFold(t *testing.T) {
	database := NewTestDB(t)

	tests := []struct {
		haystack any
		needle   any
		want     bool
	}{
		{"Schlüssel am Café", "café", true},
		{"Schlüssel am Café", "CAFÉ", true},
		{"Schlüssel am Café", "SCHLÜSSEL", true},
		{"Blue Backpack", "PACK", true},
		{"Blue Backpack", "wallet", false},
		{"Cafeteria", "café", false},
		{nil, "x", false},
	}
	for _, tt := range tests {
		var got bool
		err := database.QueryRow(`SELECT `+ContainsFold+`(?, ?)`, tt.haystack, tt.needle).Scan(&got)
		if err != nil {
			t.Fatalf("contains_fold(%v, %v): %v", tt.haystack, tt.needle, err)
		}
		if got != tt.want {
			t.Errorf("contains_fold(%v, %v) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}
