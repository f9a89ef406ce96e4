package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/solwire/solwire/cli/message"
	"github.com/solwire/solwire/cli/util"
	"github.com/solwire/solwire/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "solwire\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a solwire instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "solwire"
	ctl.Version = config.Version
	ctl.Usage = "Transaction message serializer"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, message.NewCommands()...)
	ctl.Commands = append(ctl.Commands, util.NewCommands()...)
	return ctl
}
