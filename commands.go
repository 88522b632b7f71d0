package main

import (
	"fmt"
	"io"

	"github.com/go-i2p/crypto/ed25519"
	"github.com/go-i2p/crypto/types"
	"github.com/go-i2p/go-mpid/lib/common/xor_name"
	"github.com/go-i2p/go-mpid/lib/config"
	"github.com/go-i2p/go-mpid/lib/messaging/mpid_header"
	"github.com/go-i2p/go-mpid/lib/util"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ed25519PublicKeySize  = 32
	ed25519PrivateKeySize = 64
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "go-mpid",
		Short:         "Create, verify and inspect signed MPID message headers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default is $HOME/.go-mpid/config.yaml)")
	root.PersistentFlags().String("encoding", util.ENCODING_HEX, "encoding of keys and headers: hex or base64")
	root.PersistentFlags().String("output", config.OUTPUT_TEXT, "output format: text or yaml")
	_ = viper.BindPFlag("encoding", root.PersistentFlags().Lookup("encoding"))
	_ = viper.BindPFlag("output", root.PersistentFlags().Lookup("output"))

	root.AddCommand(newNewCommand(), newVerifyCommand(), newNameCommand(), newInspectCommand())
	return root
}

func newNewCommand() *cobra.Command {
	var (
		senderHex   string
		metadata    string
		metadataHex string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create and sign a header, printing its encoding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.CurrentConfig()

			sender, err := parseSender(senderHex)
			if err != nil {
				return err
			}
			data, err := parseMetadata(metadata, metadataHex)
			if err != nil {
				return err
			}
			secretKey, err := loadSecretKey(cfg)
			if err != nil {
				return err
			}

			header, err := mpid_header.NewMpidHeader(sender, data, secretKey)
			if err != nil {
				return err
			}
			encoded, err := header.Bytes()
			if err != nil {
				return err
			}
			text, err := util.EncodeText(encoded, cfg.Encoding)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&senderHex, "sender", "", "sender name as 128 hex characters (random if empty)")
	cmd.Flags().StringVar(&metadata, "metadata", "", "metadata as a literal string")
	cmd.Flags().StringVar(&metadataHex, "metadata-hex", "", "metadata as hex")
	cmd.Flags().String("secret-key-file", "", "file holding the encoded Ed25519 secret key")
	_ = viper.BindPFlag("keys.secret_key_file", cmd.Flags().Lookup("secret-key-file"))
	return cmd
}

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <header>",
		Short: "Check a header's signature against a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.CurrentConfig()
			header, err := decodeHeader(args[0], cfg.Encoding)
			if err != nil {
				return err
			}
			publicKey, err := loadPublicKey(cfg)
			if err != nil {
				return err
			}
			if !header.Verify(publicKey) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), "invalid"); err != nil {
					return err
				}
				return oops.Errorf("signature does not verify")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
	cmd.Flags().String("public-key-file", "", "file holding the encoded Ed25519 public key")
	_ = viper.BindPFlag("keys.public_key_file", cmd.Flags().Lookup("public-key-file"))
	return cmd
}

func newNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name <header>",
		Short: "Print a header's name, multihash and CID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, err := decodeHeader(args[0], config.CurrentConfig().Encoding)
			if err != nil {
				return err
			}
			name, err := header.Name()
			if err != nil {
				return err
			}
			mh, err := header.Multihash()
			if err != nil {
				return err
			}
			c, err := header.CID()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:      %s\n", name.Hex())
			fmt.Fprintf(out, "multihash: %s\n", mh.B58String())
			_, err = fmt.Fprintf(out, "cid:       %s\n", c.String())
			return err
		},
	}
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <header>",
		Short: "Print the fields of a header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.CurrentConfig()
			header, err := decodeHeader(args[0], cfg.Encoding)
			if err != nil {
				return err
			}
			if cfg.Output == config.OUTPUT_YAML {
				return writeHeaderYAML(cmd.OutOrStdout(), header)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), header.String())
			return err
		},
	}
}

// headerView is the YAML rendering of a header. Byte fields are full hex.
type headerView struct {
	Sender    string `yaml:"sender"`
	GUID      string `yaml:"guid"`
	Metadata  string `yaml:"metadata"`
	Signature string `yaml:"signature"`
	Name      string `yaml:"name"`
	CID       string `yaml:"cid"`
}

func writeHeaderYAML(w io.Writer, header *mpid_header.MpidHeader) error {
	name, err := header.Name()
	if err != nil {
		return err
	}
	c, err := header.CID()
	if err != nil {
		return err
	}
	guid := header.GUID()
	sig := header.Signature()
	view := headerView{
		Sender:    header.Sender().Hex(),
		GUID:      fmt.Sprintf("%x", guid[:]),
		Metadata:  fmt.Sprintf("%x", header.Metadata()),
		Signature: fmt.Sprintf("%x", sig[:]),
		Name:      name.Hex(),
		CID:       c.String(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return oops.Wrapf(err, "failed to render header as yaml")
	}
	return enc.Close()
}

func parseSender(senderHex string) (xor_name.XorName, error) {
	if senderHex == "" {
		return xor_name.RandomXorName()
	}
	return xor_name.ParseHex(senderHex)
}

func parseMetadata(literal, hexText string) ([]byte, error) {
	if literal != "" && hexText != "" {
		return nil, oops.Errorf("--metadata and --metadata-hex are mutually exclusive")
	}
	if hexText != "" {
		return util.DecodeText(hexText, util.ENCODING_HEX)
	}
	return []byte(literal), nil
}

func decodeHeader(text, encoding string) (*mpid_header.MpidHeader, error) {
	raw, err := util.DecodeText(text, encoding)
	if err != nil {
		return nil, err
	}
	header := new(mpid_header.MpidHeader)
	if err := header.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return header, nil
}

func loadSecretKey(cfg *config.CLIConfig) (types.SigningPrivateKey, error) {
	if cfg.Keys.SecretKeyFile == "" {
		return nil, oops.Errorf("no secret key file configured")
	}
	raw, err := util.ReadEncodedFile(cfg.Keys.SecretKeyFile, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519PrivateKeySize {
		return nil, oops.Errorf("secret key is %d bytes, expected %d", len(raw), ed25519PrivateKeySize)
	}
	return ed25519.NewEd25519PrivateKey(raw)
}

func loadPublicKey(cfg *config.CLIConfig) (types.SigningPublicKey, error) {
	if cfg.Keys.PublicKeyFile == "" {
		return nil, oops.Errorf("no public key file configured")
	}
	raw, err := util.ReadEncodedFile(cfg.Keys.PublicKeyFile, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519PublicKeySize {
		return nil, oops.Errorf("public key is %d bytes, expected %d", len(raw), ed25519PublicKeySize)
	}
	return ed25519.Ed25519PublicKey(raw), nil
}
