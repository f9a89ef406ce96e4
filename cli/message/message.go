/*
Package message contains commands to serialize and inspect transaction messages.
*/
package message

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/solwire/solwire/cli/options"
	"github.com/solwire/solwire/pkg/config"
	"github.com/solwire/solwire/pkg/core/transaction"
	"github.com/solwire/solwire/pkg/encoding/base58"
	"github.com/solwire/solwire/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errNoInput = errors.New("no input file given, specify it with the '--in' or '-i' flag")

// NewCommands returns 'message' command.
func NewCommands() []cli.Command {
	serializeFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "in, i",
			Usage: "YAML file with the message description",
		},
		options.Ordering,
		options.ConfigFile,
		options.Debug,
	}
	serializeFlags = append(serializeFlags, options.Encoding...)
	inspectFlags := []cli.Flag{
		options.ConfigFile,
		options.Debug,
	}
	inspectFlags = append(inspectFlags, options.Encoding...)
	return []cli.Command{{
		Name:  "message",
		Usage: "Serialize and inspect transaction messages",
		Subcommands: []cli.Command{
			{
				Name:      "serialize",
				Usage:     "Serialize message described in a YAML file",
				UsageText: "serialize -i <file.yml> [--ordering <policy>] [--hex | --base58 | --base64] [--config-file <file>]",
				Description: `Compiles the message described in the given YAML file and prints its
   serialized form (the data to be signed) in the configured text encoding
   (base64 by default). Account keys and the recent blockhash are Base58
   strings, instruction data is hex-encoded.
`,
				Action: serialize,
				Flags:  serializeFlags,
			},
			{
				Name:      "inspect",
				Usage:     "Decode serialized message and print it as JSON",
				UsageText: "inspect [--hex | --base58 | --base64] [--config-file <file>] <data>",
				Action:    inspect,
				Flags:     inspectFlags,
			},
		},
	}}
}

// File is the YAML message description.
type File struct {
	RecentBlockhash util.Hash                 `yaml:"recentBlockhash"`
	AccountKeys     []transaction.AccountMeta `yaml:"accountKeys"`
	Instructions    []InstructionFile         `yaml:"instructions"`
}

// InstructionFile is the YAML instruction description.
type InstructionFile struct {
	ProgramID util.Key                  `yaml:"programId"`
	Keys      []transaction.AccountMeta `yaml:"keys"`
	Data      string                    `yaml:"data"`
}

// ReadFile reads the message description from the given path.
func ReadFile(path string) (*transaction.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read message file: %w", err)
	}
	var f File
	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("can't parse message file: %w", err)
	}
	return f.Message()
}

// Message converts the description into a transaction.Message.
func (f *File) Message() (*transaction.Message, error) {
	m := &transaction.Message{
		AccountKeys:     f.AccountKeys,
		RecentBlockhash: f.RecentBlockhash,
		Instructions:    make([]transaction.Instruction, len(f.Instructions)),
	}
	for i, ins := range f.Instructions {
		data, err := hex.DecodeString(strings.TrimPrefix(ins.Data, "0x"))
		if err != nil {
			return nil, fmt.Errorf("instruction %d: bad data: %w", i, err)
		}
		m.Instructions[i] = transaction.Instruction{
			ProgramID: ins.ProgramID,
			Keys:      ins.Keys,
			Data:      data,
		}
	}
	return m, nil
}

func serialize(ctx *cli.Context) error {
	if err := ensureNoArgs(ctx); err != nil {
		return err
	}
	cfg, log, enc, err := setup(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	in := ctx.String("in")
	if len(in) == 0 {
		return cli.NewExitError(errNoInput, 1)
	}
	m, err := ReadFile(in)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	m.Ordering = cfg.AccountOrdering
	if o := ctx.String("ordering"); o != "" {
		m.Ordering, err = transaction.AccountOrderingFromString(o)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	log.Debug("compiling message",
		zap.String("file", in),
		zap.Int("accounts", len(m.AccountKeys)),
		zap.Int("instructions", len(m.Instructions)),
		zap.Stringer("ordering", m.Ordering))

	b, err := m.Bytes()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("can't serialize message: %w", err), 1)
	}
	log.Info("message serialized",
		zap.Int("size", len(b)),
		zap.Stringer("blockhash", m.RecentBlockhash))
	fmt.Fprintln(ctx.App.Writer, encode(b, enc))
	return nil
}

func inspect(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("exactly one serialized message must be given", 1)
	}
	_, log, enc, err := setup(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	b, err := decode(ctx.Args().First(), enc)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("can't decode %s input: %w", enc, err), 1)
	}
	cm, err := transaction.NewCompiledMessageFromBytes(b)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid message: %w", err), 1)
	}
	log.Debug("message decoded", zap.Int("size", len(b)))

	out, err := json.MarshalIndent(newView(cm), "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}

func setup(ctx *cli.Context) (config.ApplicationConfiguration, *zap.Logger, string, error) {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return config.ApplicationConfiguration{}, nil, "", err
	}
	appCfg := cfg.ApplicationConfiguration
	enc, err := options.GetEncoding(ctx, appCfg)
	if err != nil {
		return appCfg, nil, "", err
	}
	log, _, err := options.HandleLoggingParams(ctx.Bool("debug"), appCfg)
	if err != nil {
		return appCfg, nil, "", err
	}
	return appCfg, log, enc, nil
}

func ensureNoArgs(ctx *cli.Context) error {
	if ctx.NArg() != 0 {
		return cli.NewExitError(fmt.Errorf("unexpected arguments: %s", strings.Join(ctx.Args(), " ")), 1)
	}
	return nil
}

func encode(b []byte, enc string) string {
	switch enc {
	case config.EncodingHex:
		return hex.EncodeToString(b)
	case config.EncodingBase58:
		return base58.Encode(b)
	default:
		return base64.StdEncoding.EncodeToString(b)
	}
}

func decode(s string, enc string) ([]byte, error) {
	switch enc {
	case config.EncodingHex:
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))
	case config.EncodingBase58:
		return base58.Decode(s)
	default:
		return base64.StdEncoding.DecodeString(s)
	}
}
