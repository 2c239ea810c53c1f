// Package conf handles toolkit configuration: logging output and the
// default display filter applied when summarizing contributions.
package conf

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/glassbox-ml/glassbox/internal/check"
	"github.com/glassbox-ml/glassbox/internal/errors"
)

// LogConfig controls the optional file logger.
type LogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxBackups int    `mapstructure:"maxbackups"`
	MaxAge     int    `mapstructure:"maxage"`
}

// MainConfig holds toolkit-wide settings.
type MainConfig struct {
	Name string    `mapstructure:"name"`
	Log  LogConfig `mapstructure:"log"`
}

// DisplayConfig holds the default display filter for contribution summaries.
type DisplayConfig struct {
	FeaturesToHide []string `mapstructure:"featurestohide"`
	Threshold      float64  `mapstructure:"threshold"`
	Positive       bool     `mapstructure:"positive"`
	MaxContrib     int      `mapstructure:"maxcontrib"`
}

// Settings is the root configuration structure.
type Settings struct {
	Debug   bool          `mapstructure:"debug"`
	Main    MainConfig    `mapstructure:"main"`
	Display DisplayConfig `mapstructure:"display"`
}

// Load reads settings from an optional config.yaml found in the given search
// paths, falling back to defaults when no file exists.
func Load(configPaths ...string) (*Settings, error) {
	setDefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"."}
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, errors.New(fmt.Errorf("error reading config file: %w", err)).
				Category(errors.CategoryConfiguration).
				Build()
		}
		// Missing config file is fine, defaults apply.
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error unmarshaling config: %w", err)).
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// DefaultSettings returns settings seeded with the toolkit defaults without
// reading any config file.
func DefaultSettings() *Settings {
	return &Settings{
		Main: MainConfig{
			Name: "glassbox",
			Log: LogConfig{
				Path:       "glassbox.log",
				Level:      "info",
				MaxSize:    100,
				MaxBackups: 3,
				MaxAge:     28,
			},
		},
		Display: DisplayConfig{
			MaxContrib: 10,
		},
	}
}

// DefaultMaskParams materializes a mask-params map from the display settings.
// The result only uses keys accepted by check.MaskParams.
func DefaultMaskParams(settings *Settings) map[string]any {
	params := map[string]any{
		check.MaskThreshold:  settings.Display.Threshold,
		check.MaskPositive:   settings.Display.Positive,
		check.MaskMaxContrib: settings.Display.MaxContrib,
	}
	if len(settings.Display.FeaturesToHide) > 0 {
		params[check.MaskFeaturesToHide] = settings.Display.FeaturesToHide
	}
	return params
}
