package conf

import (
	"github.com/spf13/viper"
)

// setDefaultConfig seeds viper with the toolkit defaults.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "glassbox")
	viper.SetDefault("main.log.enabled", false)
	viper.SetDefault("main.log.path", "glassbox.log")
	viper.SetDefault("main.log.level", "info")
	viper.SetDefault("main.log.maxsize", 100)
	viper.SetDefault("main.log.maxbackups", 3)
	viper.SetDefault("main.log.maxage", 28)

	viper.SetDefault("display.threshold", 0.0)
	viper.SetDefault("display.positive", false)
	viper.SetDefault("display.maxcontrib", 10)
}
