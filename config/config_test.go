package config

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestInitConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/medtyping.yaml", []byte("StoragePath: /data\nBackend: file\nDefaultLevel: 2\n"), 0644)

	cfg, err := InitConfig(fs, "/medtyping.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StoragePath != "/data" || cfg.Backend != BackendFile || cfg.DefaultLevel != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.ShakeMillis != DefaultConfig.ShakeMillis {
		t.Errorf("ShakeMillis = %d, want default %d", cfg.ShakeMillis, DefaultConfig.ShakeMillis)
	}
	if cfg.DbFile() != "/data/checked.json" {
		t.Errorf("DbFile() = %s", cfg.DbFile())
	}
}

func TestInitConfigMissing(t *testing.T) {
	_, err := InitConfig(afero.NewMemMapFs(), "/nope.yaml")
	if err == nil || !strings.HasPrefix(err.Error(), "Init config error") {
		t.Errorf("InitConfig() error = %v", err)
	}
}

func TestInitConfigDefaultFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := InitConfig(fs, "")
	if err != nil {
		t.Fatal(err)
	}
	exist, _ := afero.Exists(fs, DefaultConfigPath)
	if !exist {
		t.Errorf("default config %s not created", DefaultConfigPath)
	}
	if cfg.Backend != BackendBolt || cfg.DbFile() != path.Join(DefaultStorageDir, "medtyping.db") {
		t.Errorf("unexpected default config %+v", cfg)
	}
}

func TestInitConfigBadBackend(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/medtyping.yaml", []byte("Backend: redis\n"), 0644)
	if _, err := InitConfig(fs, "/medtyping.yaml"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestEnvOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/medtyping.yaml", []byte("StoragePath: /data\n"), 0644)
	os.Setenv("MEDTYPING_BACKEND", "sqlite")
	os.Setenv("MEDTYPING_COUNT", "5")
	os.Setenv("MEDTYPING_LEVEL", "2")
	defer os.Unsetenv("MEDTYPING_BACKEND")
	defer os.Unsetenv("MEDTYPING_COUNT")
	defer os.Unsetenv("MEDTYPING_LEVEL")

	cfg, err := InitConfig(fs, "/medtyping.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != BackendSQLite || cfg.DefaultCount != 5 || cfg.DefaultLevel != 2 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.DbFile() != "/data/medtyping.sqlite" {
		t.Errorf("DbFile() = %s", cfg.DbFile())
	}
}

func TestLoadDotEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/work/.env", []byte("MEDTYPING_LOG=/tmp/x.log\nMEDTYPING_BACKEND=file\n"), 0644)
	os.Setenv("MEDTYPING_BACKEND", "sqlite")
	defer os.Unsetenv("MEDTYPING_LOG")
	defer os.Unsetenv("MEDTYPING_BACKEND")

	if err := LoadDotEnv(fs, "/work/missing.env"); err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if err := LoadDotEnv(fs, "/work/.env"); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("MEDTYPING_LOG"); got != "/tmp/x.log" {
		t.Errorf("MEDTYPING_LOG = %q", got)
	}
	if got := os.Getenv("MEDTYPING_BACKEND"); got != "sqlite" {
		t.Errorf("MEDTYPING_BACKEND = %q, want the environment to win", got)
	}
}

func TestLevelEnvInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/medtyping.yaml", []byte("StoragePath: /data\n"), 0644)
	os.Setenv("MEDTYPING_LEVEL", "two")
	defer os.Unsetenv("MEDTYPING_LEVEL")
	if _, err := InitConfig(fs, "/medtyping.yaml"); err == nil {
		t.Error("InitConfig() accepted MEDTYPING_LEVEL=two")
	}
}
