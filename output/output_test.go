package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)

func TestArchiveMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	got, err := Archive(dir, fixedNow)
	if err != nil || got != "" {
		t.Fatalf("Archive of missing dir = %q, %v", got, err)
	}
}

func TestPrepareArchivesExisting(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sheet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "old.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	archived, err := Prepare(dir, fixedNow)
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if want := filepath.Join(root, "sheet-2026-10-19"); archived != want {
		t.Fatalf("archived to %q, want %q", archived, want)
	}
	if _, err := os.Stat(filepath.Join(archived, "old.png")); err != nil {
		t.Fatalf("old content not moved: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected fresh empty dir, got %v, %v", entries, err)
	}

	// 同一天再次运行：追加数字后缀
	again, err := Prepare(dir+"/", fixedNow)
	if err != nil {
		t.Fatalf("second Prepare error: %v", err)
	}
	if want := filepath.Join(root, "sheet-2026-10-19-2"); again != want {
		t.Fatalf("second archive = %q, want %q", again, want)
	}
}

func TestArchiveRefusesRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes")
	if err := os.WriteFile(path, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Prepare(path, fixedNow); !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite for a regular file, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "keep me" {
		t.Fatalf("regular file was moved or changed: %q, %v", data, err)
	}
	if _, err := os.Stat(path + "-2026-10-19"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected archive of a regular file: %v", err)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, "intro", []byte("png"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if path != filepath.Join(dir, "intro.png") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "png" {
		t.Fatalf("content = %q, %v", data, err)
	}

	if _, err := Write(filepath.Join(dir, "missing", "deeper"), "x", nil); !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}
