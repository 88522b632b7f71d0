package config

import (
	"github.com/go-i2p/go-mpid/lib/util"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

// Output formats for commands that print a header.
const (
	OUTPUT_TEXT = "text"
	OUTPUT_YAML = "yaml"
)

// KeyConfig names the files holding encoded key material.
type KeyConfig struct {
	SecretKeyFile string
	PublicKeyFile string
}

// CLIConfig is the complete configuration of the command line tool.
type CLIConfig struct {
	// Encoding of keys and serialized headers: hex or base64
	Encoding string
	Output   string
	Keys     KeyConfig
}

// Defaults returns the built-in configuration.
func Defaults() CLIConfig {
	return CLIConfig{
		Encoding: util.ENCODING_HEX,
		Output:   OUTPUT_TEXT,
	}
}

// CurrentConfig builds a CLIConfig from the current viper settings.
func CurrentConfig() *CLIConfig {
	return &CLIConfig{
		Encoding: viper.GetString("encoding"),
		Output:   viper.GetString("output"),
		Keys: KeyConfig{
			SecretKeyFile: viper.GetString("keys.secret_key_file"),
			PublicKeyFile: viper.GetString("keys.public_key_file"),
		},
	}
}

// Validate rejects unknown encodings and output formats.
func (c *CLIConfig) Validate() error {
	switch c.Encoding {
	case util.ENCODING_HEX, util.ENCODING_BASE64:
	default:
		return oops.Errorf("unsupported encoding %q", c.Encoding)
	}
	switch c.Output {
	case OUTPUT_TEXT, OUTPUT_YAML:
	default:
		return oops.Errorf("unsupported output format %q", c.Output)
	}
	return nil
}
