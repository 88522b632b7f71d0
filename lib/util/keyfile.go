package util

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Text encodings accepted for key material and serialized headers.
const (
	ENCODING_HEX    = "hex"
	ENCODING_BASE64 = "base64"
)

// DecodeText decodes s using the named encoding. Surrounding whitespace is ignored.
func DecodeText(s, encoding string) ([]byte, error) {
	s = strings.TrimSpace(s)
	switch encoding {
	case ENCODING_HEX, "":
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, oops.Wrapf(err, "invalid hex input")
		}
		return b, nil
	case ENCODING_BASE64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, oops.Wrapf(err, "invalid base64 input")
		}
		return b, nil
	default:
		return nil, oops.Errorf("unsupported encoding %q", encoding)
	}
}

// EncodeText is the inverse of DecodeText.
func EncodeText(b []byte, encoding string) (string, error) {
	switch encoding {
	case ENCODING_HEX, "":
		return hex.EncodeToString(b), nil
	case ENCODING_BASE64:
		return base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", oops.Errorf("unsupported encoding %q", encoding)
	}
}

// ReadEncodedFile reads a text file holding encoded bytes, such as a key,
// and returns the decoded contents. Expected sizes are checked by the caller.
func ReadEncodedFile(path, encoding string) ([]byte, error) {
	log.WithFields(logger.Fields{
		"at":       "ReadEncodedFile",
		"path":     path,
		"encoding": encoding,
	}).Debug("Reading encoded file")

	if !CheckFileExists(path) {
		return nil, oops.Errorf("file %s does not exist", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("Failed to read file")
		return nil, oops.Wrapf(err, "failed to read %s", path)
	}
	return DecodeText(string(raw), encoding)
}
