package config

import (
	"fmt"

	"github.com/solwire/solwire/pkg/core/transaction"
)

// Output encodings for serialized messages.
const (
	EncodingBase64 = "base64"
	EncodingHex    = "hex"
	EncodingBase58 = "base58"
)

// ApplicationConfiguration is the configuration of the tool.
type ApplicationConfiguration struct {
	// LogLevel is one of zap levels, "info" if empty.
	LogLevel string `yaml:"LogLevel"`
	// LogPath is a file to write logs to, stderr if empty.
	LogPath string `yaml:"LogPath"`
	// AccountOrdering is the account table ordering policy.
	AccountOrdering transaction.AccountOrdering `yaml:"AccountOrdering"`
	// OutputEncoding is the text encoding of serialized messages.
	OutputEncoding string `yaml:"OutputEncoding"`
}

// Validate checks ApplicationConfiguration for internal consistency and returns
// an error if any invalid settings are found.
func (a *ApplicationConfiguration) Validate() error {
	switch a.OutputEncoding {
	case EncodingBase64, EncodingHex, EncodingBase58:
	default:
		return fmt.Errorf("unknown OutputEncoding: %q", a.OutputEncoding)
	}
	return nil
}
