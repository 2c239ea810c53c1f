package conf

import (
	"fmt"
	"strings"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateLogSettings(&settings.Main.Log); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateDisplaySettings(&settings.Display); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validateLogSettings validates the file logger settings
func validateLogSettings(log *LogConfig) error {
	var errs []string

	if log.Enabled && log.Path == "" {
		errs = append(errs, "log path is required when file logging is enabled")
	}

	switch strings.ToLower(log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level: %s", log.Level))
	}

	if log.MaxSize < 0 || log.MaxBackups < 0 || log.MaxAge < 0 {
		errs = append(errs, "log rotation settings must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("log settings errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// validateDisplaySettings validates the default display filter
func validateDisplaySettings(display *DisplayConfig) error {
	var errs []string

	if display.Threshold < 0 {
		errs = append(errs, "display threshold must not be negative")
	}

	if display.MaxContrib < 0 {
		errs = append(errs, "display maxcontrib must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("display settings errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
