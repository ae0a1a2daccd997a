// Command bilan is the operator CLI: it prints the wealth report, lists
// positions and hashes the owner password for OWNER_PASSWORD_HASH.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/guillaumevincent/monpatrimoine/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// register adds the bilan subcommands to c.
func register(c *subcommands.Commander) {
	c.Register(&reportCmd{out: os.Stdout}, "wealth")
	c.Register(&positionsCmd{out: os.Stdout}, "wealth")
	c.Register(&hashPasswordCmd{in: os.Stdin, out: os.Stdout}, "setup")
}
