package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Wizard.Vendor != "" {
		t.Errorf("expected no preselected vendor, got '%s'", cfg.Wizard.Vendor)
	}

	if len(cfg.Wizard.Extensions) != 2 || cfg.Wizard.Extensions[0] != ".ab1" {
		t.Errorf("unexpected default extensions %v", cfg.Wizard.Extensions)
	}

	if cfg.Commit.DryRun {
		t.Error("expected DryRun to be false")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[wizard]
vendor = "GENEWIZ"
extensions = [".ab1"]

[commit]
dry_run = true
operation_log = "/tmp/ops.log"

[log]
file = "/tmp/sanger-rename.log"
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	v, ok, err := cfg.Vendor()
	if err != nil || !ok || v != sanger.Genewiz {
		t.Errorf("Vendor() = %v, %v, %v; want Genewiz", v, ok, err)
	}
	if len(cfg.Wizard.Extensions) != 1 {
		t.Errorf("expected extensions to be replaced, got %v", cfg.Wizard.Extensions)
	}
	if !cfg.Commit.DryRun || cfg.Commit.OperationLog != "/tmp/ops.log" {
		t.Errorf("unexpected commit config %+v", cfg.Commit)
	}
	if !cfg.Log.Verbose || cfg.Log.File != "/tmp/sanger-rename.log" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[commit]\ndry_run = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Wizard.Extensions) != 2 {
		t.Errorf("expected default extensions, got %v", cfg.Wizard.Extensions)
	}
	if _, ok, _ := cfg.Vendor(); ok {
		t.Error("expected no vendor")
	}
}

func TestLoadRejectsUnknownVendor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wizard]\nvendor = \"acme\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, sanger.ErrUnknownVendor) {
		t.Errorf("Load() error = %v, want ErrUnknownVendor", err)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoadDefaultLocationMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Wizard.Extensions) != 2 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidateExtensions(t *testing.T) {
	tests := []struct {
		name    string
		exts    []string
		wantErr bool
	}{
		{"valid", []string{".ab1", ".seq"}, false},
		{"missing dot", []string{"ab1"}, true},
		{"bare dot", []string{"."}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Wizard.Extensions = tt.exts
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
