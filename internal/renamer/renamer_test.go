package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

var june1 = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)

func writeTrace(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("trace"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommitRenamesInPlace(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeTrace(t, tmpDir, "0001_31225060307072_(TXPCR)_[SP1].ab1")

	f := registry.NewSangerFile(src, sanger.Sangon)
	f.SetDate(june1)

	result := New(Config{}, nil).Commit([]*registry.SangerFile{f}, time.Now())

	if result.Renamed != 1 || result.Failed != 0 {
		t.Fatalf("Commit() renamed=%d failed=%d errors=%v", result.Renamed, result.Failed, result.Errors)
	}
	want := filepath.Join(tmpDir, "250601.TXPCR.SP1.ab1")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("standardized file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("original file should be gone")
	}
	if !f.Renamed() || f.NewPath() != want {
		t.Errorf("file state renamed=%v newPath=%q", f.Renamed(), f.NewPath())
	}
	if f.Path() != src {
		t.Error("Path() must stay the original path")
	}
}

func TestCommitUsesTodayWithoutDate(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeTrace(t, tmpDir, "TL1-T25_A01.ab1")
	f := registry.NewSangerFile(src, sanger.Genewiz)

	today := time.Date(2026, time.October, 19, 15, 0, 0, 0, time.Local)
	result := New(Config{}, nil).Commit([]*registry.SangerFile{f}, today)
	if result.Renamed != 1 {
		t.Fatalf("Commit() errors = %v", result.Errors)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "261019.TL1.T25.ab1")); err != nil {
		t.Errorf("expected file named with today's date: %v", err)
	}
}

func TestCommitContinuesAfterFailure(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "TL9-T25_A09.ab1")
	ok := writeTrace(t, tmpDir, "TL1-T25_A01.ab1")

	files := []*registry.SangerFile{
		registry.NewSangerFile(missing, sanger.Genewiz),
		registry.NewSangerFile(ok, sanger.Genewiz),
	}
	result := New(Config{}, nil).Commit(files, june1)

	if result.Failed != 1 || result.Renamed != 1 {
		t.Fatalf("Commit() renamed=%d failed=%d", result.Renamed, result.Failed)
	}
	if files[0].Err() == nil || !errors.Is(files[0].Err(), os.ErrNotExist) {
		t.Errorf("missing source error = %v, want not-exist", files[0].Err())
	}
	if !files[1].Renamed() {
		t.Error("second file should still be renamed")
	}
}

func TestCommitDetectsCollisions(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeTrace(t, tmpDir, "TL1-T25_A01.ab1")
	b := writeTrace(t, tmpDir, "TL1-T25_B01.ab1")
	taken := writeTrace(t, tmpDir, "250601.TL2.T25.ab1")
	c := writeTrace(t, tmpDir, "TL2-T25_C01.ab1")

	files := []*registry.SangerFile{
		registry.NewSangerFile(a, sanger.Genewiz),
		registry.NewSangerFile(b, sanger.Genewiz),
		registry.NewSangerFile(c, sanger.Genewiz),
	}
	for _, f := range files {
		f.SetDate(june1)
	}

	result := New(Config{}, nil).Commit(files, june1)
	if result.Renamed != 1 || result.Failed != 2 {
		t.Fatalf("Commit() renamed=%d failed=%d errors=%v", result.Renamed, result.Failed, result.Errors)
	}
	for _, f := range files[1:] {
		if !errors.Is(f.Err(), ErrTargetExists) {
			t.Errorf("%s error = %v, want ErrTargetExists", f.FileName(), f.Err())
		}
	}
	data, err := os.ReadFile(taken)
	if err != nil || string(data) != "trace" {
		t.Error("existing target must not be overwritten")
	}
}

func TestCommitPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	locked := filepath.Join(t.TempDir(), "locked")
	open := t.TempDir()
	if err := os.Mkdir(locked, 0755); err != nil {
		t.Fatal(err)
	}
	blocked := writeTrace(t, locked, "TL1-T25_A01.ab1")
	free := writeTrace(t, open, "TL2-T25_A02.ab1")
	if err := os.Chmod(locked, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	files := []*registry.SangerFile{
		registry.NewSangerFile(blocked, sanger.Genewiz),
		registry.NewSangerFile(free, sanger.Genewiz),
	}
	result := New(Config{}, nil).Commit(files, june1)

	if result.Failed != 1 || result.Renamed != 1 {
		t.Fatalf("Commit() renamed=%d failed=%d", result.Renamed, result.Failed)
	}
	if !errors.Is(files[0].Err(), os.ErrPermission) {
		t.Errorf("error = %v, want permission denied", files[0].Err())
	}
	if _, err := os.Stat(filepath.Join(open, "250601.TL2.T25.ab1")); err != nil {
		t.Errorf("file in writable directory should be renamed: %v", err)
	}
}

func TestCommitDryRun(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeTrace(t, tmpDir, "K528-1.C1.34781340.B08.ab1")
	f := registry.NewSangerFile(src, sanger.Ruibio)

	logPath := filepath.Join(tmpDir, "ops.log")
	result := New(Config{DryRun: true, LogPath: logPath}, nil).Commit([]*registry.SangerFile{f}, june1)

	if !result.DryRun || result.Renamed != 1 {
		t.Fatalf("Commit() dry run result = %+v", result)
	}
	if result.Operations[0].Destination != filepath.Join(tmpDir, "250601.K528-1.C1.ab1") {
		t.Errorf("Destination = %q", result.Operations[0].Destination)
	}
	if _, err := os.Stat(src); err != nil {
		t.Error("dry run must not move the file")
	}
	if f.Renamed() {
		t.Error("dry run must not mark the file renamed")
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("dry run must not write the operation log")
	}
}

func TestCommitWritesOperationLog(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeTrace(t, tmpDir, "TL1-T25_A01.ab1")
	f := registry.NewSangerFile(src, sanger.Genewiz)

	logPath := filepath.Join(tmpDir, "log", "operations.log")
	result := New(Config{LogPath: logPath}, nil).Commit([]*registry.SangerFile{f}, june1)
	if len(result.Errors) != 0 {
		t.Fatalf("Commit() errors = %v", result.Errors)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading operation log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	parts := strings.Split(line, "|")
	if len(parts) != 4 || parts[1] != "rename" || parts[2] != src || parts[3] != filepath.Join(tmpDir, "250601.TL1.T25.ab1") {
		t.Errorf("unexpected log line %q", line)
	}
}

func TestCommitAlreadyStandardized(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeTrace(t, tmpDir, "250601.TL1.T25.ab1")
	f := registry.NewSangerFile(src, sanger.Genewiz)
	f.SetLabel(registry.Template, "TL1")
	f.SetLabel(registry.Primer, "T25")

	result := New(Config{}, nil).Commit([]*registry.SangerFile{f}, june1)
	if result.Unchanged != 1 || result.Failed != 0 {
		t.Errorf("Commit() unchanged=%d failed=%d errors=%v", result.Unchanged, result.Failed, result.Errors)
	}
}

func TestCommitRejectsLabelsThatLeaveDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	runDir := filepath.Join(tmpDir, "run")
	if err := os.Mkdir(runDir, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		kind  registry.LabelKind
		label string
	}{
		{"parent traversal in template", registry.Template, "x/../../escaped"},
		{"separator in primer", registry.Primer, "M13F/pUC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := registry.NewSangerFile(writeTrace(t, runDir, "TL1-T25_A01.ab1"), sanger.Genewiz)
			bad.SetLabel(tt.kind, tt.label)
			good := registry.NewSangerFile(writeTrace(t, runDir, "TL2-T25_A02.ab1"), sanger.Genewiz)

			result := New(Config{}, nil).Commit([]*registry.SangerFile{bad, good}, june1)

			if result.Renamed != 1 || result.Failed != 1 {
				t.Fatalf("Commit() renamed=%d failed=%d errors=%v", result.Renamed, result.Failed, result.Errors)
			}
			if !errors.Is(bad.Err(), ErrInvalidName) {
				t.Errorf("Err() = %v, want ErrInvalidName", bad.Err())
			}
			if _, err := os.Stat(bad.Path()); err != nil {
				t.Errorf("rejected file should stay in place: %v", err)
			}
			if _, err := os.Stat(filepath.Join(runDir, "250601.TL2.T25.ab1")); err != nil {
				t.Errorf("other file should still be renamed: %v", err)
			}
			if _, err := os.Stat(filepath.Join(tmpDir, "escaped.T25.ab1")); !os.IsNotExist(err) {
				t.Error("file escaped its directory")
			}

			// reset for the next case
			if err := os.Remove(filepath.Join(runDir, "250601.TL2.T25.ab1")); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestDryRunRejectsInvalidName(t *testing.T) {
	tmpDir := t.TempDir()
	f := registry.NewSangerFile(writeTrace(t, tmpDir, "TL1-T25_A01.ab1"), sanger.Genewiz)
	f.SetLabel(registry.Primer, "M13F/pUC")

	result := New(Config{DryRun: true}, nil).Commit([]*registry.SangerFile{f}, june1)
	if result.Failed != 1 || !errors.Is(result.Errors[0], ErrInvalidName) {
		t.Errorf("Commit() failed=%d errors=%v, want one ErrInvalidName", result.Failed, result.Errors)
	}
}
