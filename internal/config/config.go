// Package config loads and validates the quote service configuration from an
// optional YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Snapshot drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverDynamoDB = "dynamodb"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Business      BusinessConfig      `yaml:"business"`
	Form          FormConfig          `yaml:"form"`
	Session       SessionConfig       `yaml:"session"`
	Snapshot      SnapshotConfig      `yaml:"snapshot"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// BusinessConfig is the identity printed on quote documents.
type BusinessConfig struct {
	Name         string   `yaml:"name"`
	Address      string   `yaml:"address"`
	Phones       []string `yaml:"phones"`
	ValidityDays int      `yaml:"validity_days"`
	FooterLines  []string `yaml:"footer_lines"`
}

type FormConfig struct {
	Locale           string        `yaml:"locale"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	SnapshotKey      string        `yaml:"snapshot_key"`
	NotificationTTL  time.Duration `yaml:"notification_ttl"`
	LiveDebounce     time.Duration `yaml:"live_debounce"`
	ExportDelay      time.Duration `yaml:"export_delay"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type SnapshotConfig struct {
	Driver   string         `yaml:"driver"`
	Redis    RedisConfig    `yaml:"redis"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
}

type RedisConfig struct {
	URL    string        `yaml:"url"`
	KeyTTL time.Duration `yaml:"key_ttl"`
}

type DynamoDBConfig struct {
	Table           string `yaml:"table"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type ObservabilityConfig struct {
	LogLevel string        `yaml:"log_level"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 15 * time.Second,
		},
		Business: BusinessConfig{
			Name:         "MVZ - PVC okna in vrata",
			Address:      "Okrog 5, 3232 Ponikva",
			Phones:       []string{"070 774 343", "070 662 211"},
			ValidityDays: 30,
			FooterLines: []string{
				"MVZ - Družinsko podjetje z več kot 25-letno tradicijo",
			},
		},
		Form: FormConfig{
			Locale:           "sl",
			AutosaveInterval: 5 * time.Second,
			SnapshotKey:      "mvzFormData",
			NotificationTTL:  5 * time.Second,
			LiveDebounce:     300 * time.Millisecond,
			ExportDelay:      1500 * time.Millisecond,
		},
		Session: SessionConfig{
			TTL: 2 * time.Hour,
		},
		Snapshot: SnapshotConfig{
			Driver: DriverMemory,
			Redis: RedisConfig{
				URL:    "redis://localhost:6379/0",
				KeyTTL: 30 * 24 * time.Hour,
			},
			DynamoDB: DynamoDBConfig{
				Table:           "form_snapshots",
				Region:          "us-east-1",
				AccessKeyID:     "local",
				SecretAccessKey: "local",
			},
		},
		Observability: ObservabilityConfig{
			LogLevel: "info",
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
	}
}

// Load starts from Defaults, applies the YAML file at path when path is not
// empty, then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, "server.port must be between 1 and 65535")
	}
	if c.Business.Name == "" {
		errs = append(errs, "business.name is required")
	}
	if c.Business.ValidityDays < 1 {
		errs = append(errs, "business.validity_days must be positive")
	}
	if c.Form.AutosaveInterval <= 0 {
		errs = append(errs, "form.autosave_interval must be positive")
	}
	if c.Form.SnapshotKey == "" {
		errs = append(errs, "form.snapshot_key is required")
	}
	if c.Form.NotificationTTL <= 0 {
		errs = append(errs, "form.notification_ttl must be positive")
	}
	if c.Form.LiveDebounce < 0 || c.Form.ExportDelay < 0 {
		errs = append(errs, "form.live_debounce and form.export_delay must not be negative")
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, "session.ttl must be positive")
	}
	switch c.Snapshot.Driver {
	case DriverMemory:
	case DriverRedis:
		if c.Snapshot.Redis.URL == "" {
			errs = append(errs, "snapshot.redis.url is required for the redis driver")
		}
	case DriverDynamoDB:
		if c.Snapshot.DynamoDB.Table == "" {
			errs = append(errs, "snapshot.dynamodb.table is required for the dynamodb driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("snapshot.driver %q is not one of memory, redis, dynamodb", c.Snapshot.Driver))
	}
	switch c.Observability.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("observability.log_level %q is not one of debug, info, warn, error", c.Observability.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// applyEnvOverrides reads MVZ_* variables, plus the AWS variables the
// DynamoDB client has always honoured.
func applyEnvOverrides(cfg *Config) error {
	ints := map[string]*int{
		"MVZ_SERVER_PORT":            &cfg.Server.Port,
		"MVZ_BUSINESS_VALIDITY_DAYS": &cfg.Business.ValidityDays,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"MVZ_SERVER_SHUTDOWN_TIMEOUT": &cfg.Server.ShutdownTimeout,
		"MVZ_FORM_AUTOSAVE_INTERVAL":  &cfg.Form.AutosaveInterval,
		"MVZ_FORM_NOTIFICATION_TTL":   &cfg.Form.NotificationTTL,
		"MVZ_FORM_LIVE_DEBOUNCE":      &cfg.Form.LiveDebounce,
		"MVZ_FORM_EXPORT_DELAY":       &cfg.Form.ExportDelay,
		"MVZ_SESSION_TTL":             &cfg.Session.TTL,
		"MVZ_SNAPSHOT_REDIS_KEY_TTL":  &cfg.Snapshot.Redis.KeyTTL,
	}
	for key, dst := range durations {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}

	strs := map[string]*string{
		"MVZ_BUSINESS_NAME":              &cfg.Business.Name,
		"MVZ_BUSINESS_ADDRESS":           &cfg.Business.Address,
		"MVZ_FORM_LOCALE":                &cfg.Form.Locale,
		"MVZ_FORM_SNAPSHOT_KEY":          &cfg.Form.SnapshotKey,
		"MVZ_SNAPSHOT_DRIVER":            &cfg.Snapshot.Driver,
		"MVZ_SNAPSHOT_REDIS_URL":         &cfg.Snapshot.Redis.URL,
		"MVZ_SNAPSHOT_DYNAMODB_TABLE":    &cfg.Snapshot.DynamoDB.Table,
		"MVZ_OBSERVABILITY_LOG_LEVEL":    &cfg.Observability.LogLevel,
		"MVZ_OBSERVABILITY_METRICS_PATH": &cfg.Observability.Metrics.Path,
		"AWS_REGION":                     &cfg.Snapshot.DynamoDB.Region,
		"AWS_ACCESS_KEY_ID":              &cfg.Snapshot.DynamoDB.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY":          &cfg.Snapshot.DynamoDB.SecretAccessKey,
		"DYNAMODB_ENDPOINT":              &cfg.Snapshot.DynamoDB.Endpoint,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("MVZ_BUSINESS_PHONES"); v != "" {
		cfg.Business.Phones = splitList(v)
	}
	if v := os.Getenv("MVZ_OBSERVABILITY_METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MVZ_OBSERVABILITY_METRICS_ENABLED: %w", err)
		}
		cfg.Observability.Metrics.Enabled = b
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
