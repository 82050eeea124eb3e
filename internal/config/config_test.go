package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_valid(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Business.Name != "MVZ test" || cfg.Business.ValidityDays != 14 {
		t.Errorf("Business = %+v", cfg.Business)
	}
	if cfg.Business.Address != "Okrog 5, 3232 Ponikva" {
		t.Errorf("Business.Address = %q, want default kept", cfg.Business.Address)
	}
	if len(cfg.Business.Phones) != 1 {
		t.Errorf("Business.Phones = %v, want 1 entry", cfg.Business.Phones)
	}
	if cfg.Form.Locale != "en" || cfg.Form.AutosaveInterval != 2*time.Second || cfg.Form.ExportDelay != 0 {
		t.Errorf("Form = %+v", cfg.Form)
	}
	if cfg.Form.SnapshotKey != "mvzFormData" {
		t.Errorf("Form.SnapshotKey = %q, want default", cfg.Form.SnapshotKey)
	}
	if cfg.Snapshot.Driver != DriverRedis || cfg.Snapshot.Redis.URL != "redis://cache:6379/1" {
		t.Errorf("Snapshot = %+v", cfg.Snapshot)
	}
	if cfg.Snapshot.Redis.KeyTTL != 24*time.Hour {
		t.Errorf("Snapshot.Redis.KeyTTL = %v, want 24h", cfg.Snapshot.Redis.KeyTTL)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Observability.LogLevel)
	}
}

func TestLoad_empty_path_uses_defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Snapshot.Driver != DriverMemory {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_missing_file(t *testing.T) {
	if _, err := Load("testdata/nonexistent.yaml"); err == nil {
		t.Fatal("Load() with missing file should return error")
	}
}

func TestLoad_bad_driver(t *testing.T) {
	_, err := Load("testdata/bad_driver.yaml")
	if err == nil || !strings.Contains(err.Error(), "snapshot.driver") {
		t.Fatalf("Load() error = %v, want snapshot.driver complaint", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Business.ValidityDays != 30 {
		t.Errorf("default ValidityDays = %d, want 30", cfg.Business.ValidityDays)
	}
	if cfg.Form.AutosaveInterval != 5*time.Second {
		t.Errorf("default AutosaveInterval = %v, want 5s", cfg.Form.AutosaveInterval)
	}
	if cfg.Form.LiveDebounce != 300*time.Millisecond {
		t.Errorf("default LiveDebounce = %v, want 300ms", cfg.Form.LiveDebounce)
	}
	if cfg.Form.ExportDelay != 1500*time.Millisecond {
		t.Errorf("default ExportDelay = %v, want 1.5s", cfg.Form.ExportDelay)
	}
	if cfg.Snapshot.DynamoDB.Table != "form_snapshots" {
		t.Errorf("default DynamoDB.Table = %q", cfg.Snapshot.DynamoDB.Table)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MVZ_SERVER_PORT", "3000")
	t.Setenv("MVZ_FORM_EXPORT_DELAY", "250ms")
	t.Setenv("MVZ_BUSINESS_PHONES", "01 111 111, 02 222 222")
	t.Setenv("MVZ_SNAPSHOT_DRIVER", "dynamodb")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("MVZ_OBSERVABILITY_METRICS_ENABLED", "false")

	cfg, err := Load("testdata/valid.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000 (env override beats file)", cfg.Server.Port)
	}
	if cfg.Form.ExportDelay != 250*time.Millisecond {
		t.Errorf("ExportDelay = %v, want 250ms", cfg.Form.ExportDelay)
	}
	if len(cfg.Business.Phones) != 2 || cfg.Business.Phones[1] != "02 222 222" {
		t.Errorf("Phones = %v", cfg.Business.Phones)
	}
	if cfg.Snapshot.Driver != DriverDynamoDB || cfg.Snapshot.DynamoDB.Endpoint != "http://dynamodb:8000" {
		t.Errorf("Snapshot = %+v", cfg.Snapshot)
	}
	if cfg.Observability.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
}

func TestEnvOverrides_bad_value(t *testing.T) {
	t.Setenv("MVZ_SESSION_TTL", "forever")
	if _, err := Load(""); err == nil {
		t.Fatal("Load() with unparseable duration should return error")
	}
}

func TestValidate_invalid_port(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with port 0 should return error")
	}
}
