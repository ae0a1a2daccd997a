package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/guillaumevincent/monpatrimoine/internal/services"
)

type hashPasswordCmd struct {
	in  io.Reader
	out io.Writer
}

func (*hashPasswordCmd) Name() string     { return "hash-password" }
func (*hashPasswordCmd) Synopsis() string { return "prints the bcrypt hash of the owner password" }
func (*hashPasswordCmd) Usage() string {
	return `bilan hash-password [<password>]

  Prints the bcrypt hash to set as OWNER_PASSWORD_HASH. The password is read
  from the first line of stdin when it is not given as an argument.

Usage Examples:
$ echo 's3cret' | bilan hash-password

`
}

func (*hashPasswordCmd) SetFlags(*flag.FlagSet) {}

func (c *hashPasswordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one password argument")
		return subcommands.ExitUsageError
	}

	password := f.Arg(0)
	if password == "" {
		line, err := bufio.NewReader(c.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "Error: could not read password: %v\n", err)
			return subcommands.ExitFailure
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.out, hash)
	return subcommands.ExitSuccess
}
