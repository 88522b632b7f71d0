// Package config provides configuration for the go-mpid command line tool.
//
// Settings are read with viper from $HOME/.go-mpid/config.yaml, or from
// the file named by CfgFile. A file holding the defaults is written on
// first use. The header library itself takes no configuration.
//
//	encoding: hex            # hex or base64, for keys and encoded headers
//	output: text             # text or yaml
//	keys:
//	  secret_key_file: ""    # Ed25519 secret key used by `new`
//	  public_key_file: ""    # Ed25519 public key used by `verify`
package config
