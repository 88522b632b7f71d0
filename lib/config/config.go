package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-i2p/go-mpid/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const GOMPID_BASE_DIR = ".go-mpid"

// InitConfig loads defaults, then the config file, creating the default
// file if none exists and no explicit file was requested.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildMpidDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	if err := handleConfigFile(); err != nil {
		return err
	}
	return CurrentConfig().Validate()
}

func setDefaults() {
	defaults := Defaults()
	viper.SetDefault("encoding", defaults.Encoding)
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("keys.secret_key_file", defaults.Keys.SecretKeyFile)
	viper.SetDefault("keys.public_key_file", defaults.Keys.PublicKeyFile)
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		if CfgFile != "" && !util.CheckFileExists(CfgFile) {
			return oops.Errorf("config file %s is not found: %w", CfgFile, err)
		}
		return oops.Wrapf(err, "error reading config file")
	}
	if CfgFile != "" {
		return oops.Errorf("config file %s is not found: %w", CfgFile, err)
	}
	return createDefaultConfig(BuildMpidDirPath())
}

func createDefaultConfig(defaultConfigDir string) error {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	if err := os.MkdirAll(defaultConfigDir, 0o700); err != nil {
		return oops.Wrapf(err, "could not create config directory")
	}
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		return oops.Wrapf(err, "could not write default config file")
	}
	log.Debugf("Created default configuration at: %s", defaultConfigFile)
	return nil
}

// BuildMpidDirPath returns $HOME/.go-mpid.
func BuildMpidDirPath() string {
	return filepath.Join(util.UserHome(), GOMPID_BASE_DIR)
}
