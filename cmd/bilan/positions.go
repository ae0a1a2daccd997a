package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/guillaumevincent/monpatrimoine/internal/report"
	"github.com/guillaumevincent/monpatrimoine/internal/state"
)

type positionsCmd struct {
	out io.Writer

	activeOnly bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "lists positions with their latest value" }
func (*positionsCmd) Usage() string {
	return `bilan positions [-active]

  Lists every position in creation order with its category, its status and
  the most recent value recorded for it.

`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.activeOnly, "active", false, "Only list positions offered for a new bilan")
}

func (c *positionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, cfg, closeFn, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	st := ledger.Load()
	positions := st.Positions
	if c.activeOnly {
		positions = state.ActivePositions(st)
	}
	if len(positions) == 0 {
		fmt.Fprintln(os.Stderr, "No position recorded yet.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tLABEL\tSTATUS\tLATEST\tDATE")
	for _, p := range positions {
		status := "active"
		if !p.Active {
			status = "inactive"
		}
		latest, date := "-", "-"
		if r, ok := state.LatestRecord(st, p.ID); ok {
			latest, date = report.Amount(r.Amount, cfg.Currency), report.DisplayDate(r.Date)
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n", p.ID, p.Category.Icon(), p.Category, p.Label, status, latest, date)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
