package main

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/state"
)

func flags(t *testing.T, cmd subcommands.Command, args ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return f
}

// useTempDatabase points the configuration at a fresh SQLite file and seeds
// it with seed.
func useTempDatabase(t *testing.T, seed func(state.State) state.State) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "bilan.db"))
	t.Setenv("CURRENCY", "EUR")

	ledger, _, closeFn, err := openLedger()
	require.NoError(t, err)
	defer closeFn()
	_, err = ledger.Update(func(s state.State) (state.State, error) { return seed(s), nil })
	require.NoError(t, err)
}

func seedWealth(s state.State) state.State {
	s = state.AddPosition(s, models.Position{ID: "cash-1", Label: "Livret A", Category: models.CategoryCash, Active: true})
	s = state.AddPosition(s, models.Position{ID: "loan-1", Label: "Prêt immo", Category: models.CategoryDebt, Active: false})
	s = state.SubmitBilan(s, "2024-01-01T00:00:00.000Z", map[string]int64{"cash-1": 100000, "loan-1": -50000})
	return s
}

func TestHashPasswordCmd(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &hashPasswordCmd{in: strings.NewReader(""), out: &out}

		status := cmd.Execute(context.Background(), flags(t, cmd, "s3cret"))

		require.Equal(t, subcommands.ExitSuccess, status)
		hash := strings.TrimSpace(out.String())
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	})

	t.Run("stdin", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &hashPasswordCmd{in: strings.NewReader("from stdin\nignored\n"), out: &out}

		status := cmd.Execute(context.Background(), flags(t, cmd))

		require.Equal(t, subcommands.ExitSuccess, status)
		hash := strings.TrimSpace(out.String())
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("from stdin")))
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &hashPasswordCmd{in: strings.NewReader(""), out: &out}

		status := cmd.Execute(context.Background(), flags(t, cmd))

		assert.Equal(t, subcommands.ExitFailure, status)
		assert.Empty(t, out.String())
	})

	t.Run("too_many_arguments", func(t *testing.T) {
		cmd := &hashPasswordCmd{in: strings.NewReader(""), out: &bytes.Buffer{}}

		status := cmd.Execute(context.Background(), flags(t, cmd, "a", "b"))

		assert.Equal(t, subcommands.ExitUsageError, status)
	})
}

func TestPositionsCmd(t *testing.T) {
	useTempDatabase(t, seedWealth)

	t.Run("all", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &positionsCmd{out: &out}

		status := cmd.Execute(context.Background(), flags(t, cmd))

		require.Equal(t, subcommands.ExitSuccess, status)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "CATEGORY")
		assert.Contains(t, lines[1], "💵 cash")
		assert.Contains(t, lines[1], "2024-01-01")
		assert.Contains(t, lines[2], "inactive")
	})

	t.Run("active_only", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &positionsCmd{out: &out}

		status := cmd.Execute(context.Background(), flags(t, cmd, "-active"))

		require.Equal(t, subcommands.ExitSuccess, status)
		assert.NotContains(t, out.String(), "loan-1")
		assert.Contains(t, out.String(), "cash-1")
	})
}

func TestReportCmd(t *testing.T) {
	useTempDatabase(t, seedWealth)

	t.Run("markdown_to_stdout", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &reportCmd{out: &out}

		status := cmd.Execute(context.Background(), flags(t, cmd, "-title", "Test wealth"))

		require.Equal(t, subcommands.ExitSuccess, status)
		assert.True(t, strings.HasPrefix(out.String(), "# Test wealth"))
		assert.Contains(t, out.String(), "| 2024-01-01 |")
	})

	t.Run("html_to_file", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &reportCmd{out: &out}
		path := filepath.Join(t.TempDir(), "report.html")

		status := cmd.Execute(context.Background(), flags(t, cmd, "-format", "html", "-o", path))

		require.Equal(t, subcommands.ExitSuccess, status)
		assert.Empty(t, out.String())
		assert.FileExists(t, path)
	})

	t.Run("unknown_format", func(t *testing.T) {
		cmd := &reportCmd{out: &bytes.Buffer{}}

		status := cmd.Execute(context.Background(), flags(t, cmd, "-format", "pdf"))

		assert.Equal(t, subcommands.ExitUsageError, status)
	})

	t.Run("unknown_currency", func(t *testing.T) {
		cmd := &reportCmd{out: &bytes.Buffer{}}

		status := cmd.Execute(context.Background(), flags(t, cmd, "-currency", "NOPE1"))

		assert.Equal(t, subcommands.ExitFailure, status)
	})
}
