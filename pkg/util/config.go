package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads the config file into the global viper instance. An empty path means ./data/config.yaml.
func ReadConfig(path string) error {
	if path == "" {
		viper.SetConfigName("config")
		viper.AddConfigPath("./data/")
	} else {
		viper.SetConfigFile(path)
	}
	viper.SetEnvPrefix("RIDEPOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file %s: %w", filepath.Base(path), err)
	}
	return nil
}
