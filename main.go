package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"tokenledger/cmd"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// no subcommand keeps the plain "run the server" behaviour
	if flag.NArg() == 0 {
		if err := cmd.Start(); err != nil {
			fmt.Printf("server run into an error: %s", err)
			os.Exit(1)
		}
		return
	}

	os.Exit(int(commander.Execute(context.Background())))
}
