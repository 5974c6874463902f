package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("ValidateDir(migrations) = %v, want nil", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "001_short_version.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := ValidateDir(dir)
	if err == nil {
		t.Fatal("ValidateDir accepted a non-timestamped filename")
	}
	if !strings.Contains(err.Error(), "invalid migration filename") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDirRejectsMissingDownSection(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "20250901000000_up_only.sql")
	if err := os.WriteFile(name, []byte("-- +goose Up\nSELECT 1;\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("ValidateDir accepted a migration without a Down section")
	}
}

func TestCreateSQLMigrationSanitizesName(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add PDF Flags!!")
	if err != nil {
		t.Fatalf("CreateSQLMigration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_pdf_flags.sql") {
		t.Fatalf("unexpected filename: %s", path)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("ValidateDir on generated migration: %v", err)
	}
}
