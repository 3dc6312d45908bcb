package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/tessera/internal/domain/validation"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLifecycle(config)...)
	validationErrors = append(validationErrors, validateFocus(config)...)
	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLifecycle(config *Config) []string {
	var validationErrors []string
	if config.Lifecycle.SleepMinWidth < 1 {
		validationErrors = append(validationErrors, "lifecycle.sleep_min_width must be positive")
	}
	if config.Lifecycle.SleepMinHeight < 1 {
		validationErrors = append(validationErrors, "lifecycle.sleep_min_height must be positive")
	}
	return validationErrors
}

func validateFocus(config *Config) []string {
	var validationErrors []string
	if config.Focus.AdjacencyTolerance < 0 {
		validationErrors = append(validationErrors, "focus.adjacency_tolerance must be non-negative")
	}
	if config.Focus.ResizeStep <= 0 || config.Focus.ResizeStep > maxResizeStep {
		validationErrors = append(validationErrors,
			fmt.Sprintf("focus.resize_step must be greater than 0 and at most %.1f", maxResizeStep))
	}
	return validationErrors
}

func validateWorkspace(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Workspace.ID) == "" {
		validationErrors = append(validationErrors, "workspace.id cannot be empty")
	}
	ratio := config.Workspace.DefaultSplitRatio
	if ratio < minSplitRatio || ratio > maxSplitRatio {
		validationErrors = append(validationErrors,
			fmt.Sprintf("workspace.default_split_ratio must be between %.1f and %.1f", minSplitRatio, maxSplitRatio))
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.SnapshotIntervalMs < 0 {
		return []string{"session.snapshot_interval_ms must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error or disabled (got %q)", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	a := config.Appearance
	return domainvalidation.ValidateHexColors(
		domainvalidation.ColorField{Key: "appearance.focus_color", Value: a.FocusColor},
		domainvalidation.ColorField{Key: "appearance.border_color", Value: a.BorderColor},
		domainvalidation.ColorField{Key: "appearance.sleeping_color", Value: a.SleepingColor},
		domainvalidation.ColorField{Key: "appearance.error_color", Value: a.ErrorColor},
		domainvalidation.ColorField{Key: "appearance.audio_color", Value: a.AudioColor},
	)
}
