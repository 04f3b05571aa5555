package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tokenledger/internal/core"

	"github.com/google/subcommands"
)

// Commands lists every subcommand of the tokenledger binary.
var Commands = []subcommands.Command{
	&serveCmd{},
	&deriveCmd{out: os.Stdout},
}

type serveCmd struct{}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the token ledger HTTP API" }
func (*serveCmd) Usage() string {
	return `tokenledger serve

  Starts the HTTP API. Settings come from the environment (API_PORT,
  TOKEN_NAME, TOKEN_SYMBOL, ...) and the optional CONFIG_FILE.
`
}

func (*serveCmd) SetFlags(*flag.FlagSet) {}

func (*serveCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "server run into an error: %s\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type deriveCmd struct {
	out io.Writer
}

func (*deriveCmd) Name() string     { return "derive" }
func (*deriveCmd) Synopsis() string { return "print the address the ledger assigns to a name" }
func (*deriveCmd) Usage() string {
	return `tokenledger derive <name> [<name>...]

  Prints one line per name with the address used when that name is given
  instead of an address to mint, transfer, burn or balance.
`
}

func (*deriveCmd) SetFlags(*flag.FlagSet) {}

func (c *deriveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	for _, name := range f.Args() {
		address, err := core.ResolveAddress(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q: %s\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.out, "%s\t%s\n", name, address)
	}
	return subcommands.ExitSuccess
}
