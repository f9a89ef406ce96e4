/*
Package util contains various helper commands.
*/
package util

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/solwire/solwire/pkg/encoding/base58"
	"github.com/solwire/solwire/pkg/util"
	"github.com/urfave/cli"
)

// NewCommands returns util commands for solwire CLI.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "util",
			Usage: "Various helper commands",
			Subcommands: []cli.Command{
				{
					Name:  "convert",
					Usage: "Convert provided argument into other possible formats",
					UsageText: `convert <arg>

<arg> is an argument which is tried to be interpreted as a Base58, hex or
        base64 string and converted to other formats. 32-byte values are
        also shown as account keys.`,
					Action: handleConvert,
				},
			},
		},
	}
}

func handleConvert(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("exactly one argument is expected", 1)
	}
	res, err := Convert(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	_, _ = io.WriteString(ctx.App.Writer, res)
	return nil
}

// Convert tries to decode arg as Base58, hex and base64 (in this order) and
// returns all successful interpretations in other formats.
func Convert(arg string) (string, error) {
	var (
		buf     strings.Builder
		decoded bool
	)
	if b, err := base58.Decode(arg); err == nil {
		decoded = true
		fmt.Fprintf(&buf, "Base58 to hex\t%s\n", hex.EncodeToString(b))
		fmt.Fprintf(&buf, "Base58 to base64\t%s\n", base64.StdEncoding.EncodeToString(b))
		writeKey(&buf, "Base58", b)
	}
	if b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x")); err == nil {
		decoded = true
		fmt.Fprintf(&buf, "Hex to Base58\t%s\n", base58.Encode(b))
		fmt.Fprintf(&buf, "Hex to base64\t%s\n", base64.StdEncoding.EncodeToString(b))
		writeKey(&buf, "Hex", b)
	}
	if b, err := base64.StdEncoding.DecodeString(arg); err == nil {
		decoded = true
		fmt.Fprintf(&buf, "Base64 to hex\t%s\n", hex.EncodeToString(b))
		fmt.Fprintf(&buf, "Base64 to Base58\t%s\n", base58.Encode(b))
		writeKey(&buf, "Base64", b)
	}
	if !decoded {
		return "", fmt.Errorf("can't interpret %q as Base58, hex or base64", arg)
	}
	return buf.String(), nil
}

func writeKey(w io.Writer, from string, b []byte) {
	if k, err := util.KeyDecodeBytes(b); err == nil {
		fmt.Fprintf(w, "%s to account key\t%s\n", from, k)
	}
}
