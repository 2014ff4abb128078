// Package config holds all agent-kits tool configuration.
// Every scanner and check reads its tunables (skip dirs, file limits,
// thresholds, timeouts) from here so behavior stays consistent across
// subcommands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all agentkit configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Filesystem scanning behavior shared by all checks
	Scan ScanConfig `yaml:"scan"`

	// Security scanner tunables
	Security SecurityConfig `yaml:"security"`

	// Pass/fail thresholds for the text linters
	Thresholds ThresholdConfig `yaml:"thresholds"`

	// Checklist / verify orchestration
	Checklist ChecklistConfig `yaml:"checklist"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig configures workspace file discovery.
type ScanConfig struct {
	// Directories never descended into
	SkipDirs []string `yaml:"skip_dirs"`

	// Per-check file collection caps (0 disables the cap)
	MaxUIFiles     int `yaml:"max_ui_files"`
	MaxPages       int `yaml:"max_pages"`
	MaxCodeFiles   int `yaml:"max_code_files"`
	MaxSchemaFiles int `yaml:"max_schema_files"`
	MaxAPIFiles    int `yaml:"max_api_files"`
}

// SecurityConfig configures the security scanner.
type SecurityConfig struct {
	// Findings kept in the report (the full counts are still aggregated)
	MaxSecretFindings  int `yaml:"max_secret_findings"`
	MaxPatternFindings int `yaml:"max_pattern_findings"`

	// npm audit subprocess
	AuditEnabled bool   `yaml:"audit_enabled"`
	AuditTimeout string `yaml:"audit_timeout"`
}

// ThresholdConfig holds the pass/fail thresholds for the linters.
type ThresholdConfig struct {
	A11yMaxIssues   int `yaml:"a11y_max_issues"`
	SEOMinScore     int `yaml:"seo_min_score"`
	APIMaxIssues    int `yaml:"api_max_issues"`
	SchemaMaxIssues int `yaml:"schema_max_issues"`
}

// ChecklistConfig configures the check orchestrator.
type ChecklistConfig struct {
	// Timeout applied to each external skill script
	CheckTimeout string `yaml:"check_timeout"`

	// Timeout for the full verification suite scripts (Lighthouse etc.)
	VerifyTimeout string `yaml:"verify_timeout"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "agent-kits",
		Version: "1.0.0",

		Scan: ScanConfig{
			SkipDirs: []string{
				"node_modules", ".git", "dist", "build",
				"__pycache__", ".venv", "venv", ".next",
			},
			MaxUIFiles:     30,
			MaxPages:       20,
			MaxCodeFiles:   50,
			MaxSchemaFiles: 15,
			MaxAPIFiles:    20,
		},

		Security: SecurityConfig{
			MaxSecretFindings:  15,
			MaxPatternFindings: 20,
			AuditEnabled:       true,
			AuditTimeout:       "60s",
		},

		Thresholds: ThresholdConfig{
			A11yMaxIssues:   10,
			SEOMinScore:     60,
			APIMaxIssues:    5,
			SchemaMaxIssues: 10,
		},

		Checklist: ChecklistConfig{
			CheckTimeout:  "5m",
			VerifyTimeout: "10m",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
// Missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("AGENTKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if timeout := os.Getenv("AGENTKIT_CHECK_TIMEOUT"); timeout != "" {
		if _, err := time.ParseDuration(timeout); err == nil {
			c.Checklist.CheckTimeout = timeout
		}
	}
	if audit := os.Getenv("AGENTKIT_DISABLE_AUDIT"); audit == "1" || audit == "true" {
		c.Security.AuditEnabled = false
	}
}

// CheckTimeout returns the parsed per-check timeout with a safe fallback.
func (c *Config) CheckTimeout() time.Duration {
	d, err := time.ParseDuration(c.Checklist.CheckTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// VerifyTimeout returns the parsed verification suite timeout.
func (c *Config) VerifyTimeout() time.Duration {
	d, err := time.ParseDuration(c.Checklist.VerifyTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// AuditTimeout returns the parsed npm audit timeout.
func (c *Config) AuditTimeout() time.Duration {
	d, err := time.ParseDuration(c.Security.AuditTimeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
