// Package config provides configuration management for Stockroom.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete application configuration.
type Config struct {
	Inventory InventoryConfig `toml:"inventory"`
	Alerts    AlertsConfig    `toml:"alerts"`
	Access    AccessConfig    `toml:"access"`
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
	Storage   StorageConfig   `toml:"storage"`
}

// InventoryConfig controls inventory defaults.
type InventoryConfig struct {
	// DefaultCategories is used when no saved state exists; one empty bin
	// is created per category on first run.
	DefaultCategories []string `toml:"default_categories"`

	// DefaultBinCapacity is the capacity of automatically created bins.
	DefaultBinCapacity int `toml:"default_bin_capacity"`
}

// AlertsConfig controls alert derivation thresholds.
type AlertsConfig struct {
	// LowStockThreshold triggers a low-stock warning below this quantity.
	LowStockThreshold int `toml:"low_stock_threshold"`

	// CriticalStockThreshold escalates low-stock alerts to critical below
	// this quantity.
	CriticalStockThreshold int `toml:"critical_stock_threshold"`

	// ExpiringWindowDays is how many days ahead expiration warnings look.
	ExpiringWindowDays int `toml:"expiring_window_days"`
}

// AccessConfig contains the shared-passphrase gate settings.
type AccessConfig struct {
	// Passphrase locks the application until entered. Empty disables the gate.
	Passphrase string `toml:"passphrase"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeGreen ColorScheme = "green"
	ColorSchemeAmber ColorScheme = "amber"
	ColorSchemeWhite ColorScheme = "white"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// StorageConfig controls the SQLite blob store.
type StorageConfig struct {
	Path                string `toml:"path"`
	BackupIntervalHours int    `toml:"backup_interval_hours"`
	BackupRetentionDays int    `toml:"backup_retention_days"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Inventory.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("inventory: %w", err))
	}

	if err := c.Alerts.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("alerts: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the inventory configuration is valid.
func (i *InventoryConfig) Validate() error {
	var errs []error

	if len(i.DefaultCategories) == 0 {
		errs = append(errs, errors.New("default_categories must not be empty"))
	}

	seen := map[string]bool{}
	for _, cat := range i.DefaultCategories {
		if cat == "" {
			errs = append(errs, errors.New("default_categories must not contain empty names"))
			break
		}
		if seen[cat] {
			errs = append(errs, fmt.Errorf("duplicate default category: %s", cat))
			break
		}
		seen[cat] = true
	}

	if i.DefaultBinCapacity < 1 {
		errs = append(errs, errors.New("default_bin_capacity must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the alerts configuration is valid.
func (a *AlertsConfig) Validate() error {
	var errs []error

	if a.LowStockThreshold < 0 {
		errs = append(errs, errors.New("low_stock_threshold must be non-negative"))
	}

	if a.CriticalStockThreshold < 0 {
		errs = append(errs, errors.New("critical_stock_threshold must be non-negative"))
	}

	if a.CriticalStockThreshold > a.LowStockThreshold {
		errs = append(errs, errors.New("critical_stock_threshold must not exceed low_stock_threshold"))
	}

	if a.ExpiringWindowDays < 0 {
		errs = append(errs, errors.New("expiring_window_days must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	validSchemes := map[ColorScheme]bool{
		ColorSchemeGreen: true,
		ColorSchemeAmber: true,
		ColorSchemeWhite: true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		return fmt.Errorf("invalid color_scheme: %s", d.ColorScheme)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	var errs []error

	if s.Path == "" {
		errs = append(errs, errors.New("path is required"))
	}

	if s.BackupIntervalHours < 0 {
		errs = append(errs, errors.New("backup_interval_hours must be non-negative"))
	}

	if s.BackupRetentionDays < 0 {
		errs = append(errs, errors.New("backup_retention_days must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// DefaultCategories is the built-in category list used when no configuration
// or saved state provides one.
var DefaultCategories = []string{
	"Electronics",
	"Clothing",
	"Food",
	"Tools",
	"Raw Materials",
	"Packaging",
	"Chemicals",
	"Other",
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Inventory: InventoryConfig{
			DefaultCategories:  append([]string(nil), DefaultCategories...),
			DefaultBinCapacity: 100,
		},
		Alerts: AlertsConfig{
			LowStockThreshold:      10,
			CriticalStockThreshold: 5,
			ExpiringWindowDays:     30,
		},
		Access: AccessConfig{
			Passphrase: "",
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeGreen,
			DateFormat:  "2006-01-02",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/stockroom.log",
		},
		Storage: StorageConfig{
			Path:                "stockroom.db",
			BackupIntervalHours: 24,
			BackupRetentionDays: 30,
		},
	}
}
