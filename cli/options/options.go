/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"

	"github.com/solwire/solwire/pkg/config"
	"github.com/solwire/solwire/pkg/io"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigFile is a flag for commands that use tool configuration.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the configuration file (defaults are used if not specified)",
}

// Debug is a flag for commands that allow debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (overrides configuration)",
}

// Ordering is a flag to override the configured account ordering.
var Ordering = cli.StringFlag{
	Name:  "ordering",
	Usage: "account ordering policy: SignerFirst or SignerWritable (overrides configuration)",
}

// Encoding is a set of flags to choose the message text encoding.
var Encoding = []cli.Flag{
	cli.BoolFlag{Name: "hex", Usage: "use hex encoding (overrides configuration)"},
	cli.BoolFlag{Name: "base58", Usage: "use base58 encoding (overrides configuration)"},
	cli.BoolFlag{Name: "base64", Usage: "use base64 encoding (overrides configuration)"},
}

// GetConfigFromContext loads the configuration file given via the
// "--config-file" option or returns the default configuration.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if configFile := ctx.String("config-file"); len(configFile) != 0 {
		return config.LoadFile(configFile)
	}
	return config.Default(), nil
}

// GetEncoding returns the text encoding selected by flags, falling back
// to the configured one.
func GetEncoding(ctx *cli.Context, cfg config.ApplicationConfiguration) (string, error) {
	var (
		enc string
		n   int
	)
	for _, e := range []string{config.EncodingHex, config.EncodingBase58, config.EncodingBase64} {
		if ctx.Bool(e) {
			enc = e
			n++
		}
	}
	switch n {
	case 0:
		return cfg.OutputEncoding, nil
	case 1:
		return enc, nil
	default:
		return "", fmt.Errorf("only one of --%s, --%s and --%s can be used",
			config.EncodingHex, config.EncodingBase58, config.EncodingBase64)
	}
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, *zap.AtomicLevel, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := io.MakeDirForFile(logPath, "logger"); err != nil {
			return nil, nil, err
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	return log, &cc.Level, err
}
