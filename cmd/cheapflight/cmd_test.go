package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cheapflight/cheapest"
	"github.com/katalvlaran/cheapflight/network"
)

// run executes a fresh root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := newRootCmd()
	c.SetArgs(args)
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemoCmd(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	require.Equal(t,
		"Cheapest price from New York to Rome with at most 1 stop(s): $850\n"+
			"Cheapest price from New York to Rome with at most 2 stop(s): $850\n",
		out)
}

func TestRouteCmd(t *testing.T) {
	out, _, err := run(t, "route", "--from", "New York", "--to", "Rome", "--max-stops", "0")
	require.NoError(t, err)
	require.Equal(t, "No route found from New York to Rome with at most 0 stop(s).\n", out)

	out, _, err = run(t, "route", "--from", "London", "--to", "Rome")
	require.NoError(t, err)
	require.Equal(t, "Cheapest price from London to Rome with at most 1 stop(s): $400\n", out)

	// Padded names resolve to and print as the stored city names.
	out, _, err = run(t, "route", "--from", " London ", "--to", "Rome ")
	require.NoError(t, err)
	require.Equal(t, "Cheapest price from London to Rome with at most 1 stop(s): $400\n", out)

	out, _, err = run(t, "route", "--from", "  New York", "--to", "Rome", "--max-stops", "0")
	require.NoError(t, err)
	require.Equal(t, "No route found from New York to Rome with at most 0 stop(s).\n", out)
}

func TestRouteCmd_EnvOverride(t *testing.T) {
	t.Setenv("CHEAPFLIGHT_MAX_STOPS", "0")
	out, _, err := run(t, "route", "--from", "New York", "--to", "Rome")
	require.NoError(t, err)
	assert.Contains(t, out, "No route found")

	// An explicit flag beats the environment.
	out, _, err = run(t, "route", "--from", "New York", "--to", "Rome", "--max-stops", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "$850")
}

func TestRouteCmd_Errors(t *testing.T) {
	_, _, err := run(t, "route", "--from", "New York", "--to", "Madrid")
	require.ErrorIs(t, err, network.ErrUnknownCity)

	_, _, err = run(t, "route", "--from", "New York", "--to", "Rome", "--max-stops", "-1")
	require.ErrorIs(t, err, cheapest.ErrNegativeStops)

	_, _, err = run(t, "route", "--from", "New York", "--to", "Rome", "--pop-limit", "1")
	require.ErrorIs(t, err, cheapest.ErrPopLimitExceeded)

	_, _, err = run(t, "route", "--from", "New York", "--to", "Rome", "--pop-limit", "-4")
	require.Error(t, err)

	_, _, err = run(t, "route", "--to", "Rome")
	require.Error(t, err, "--from is required")
}

func TestRouteCmd_NetworkFileAndVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	doc := "flights:\n  - {from: A, to: B, cost: 3}\n  - {from: B, to: C, cost: 4}\n  - {from: A, to: C, cost: 10}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, logs, err := run(t, "route", "--network", path, "--from", "A", "--to", "C", "-v")
	require.NoError(t, err)
	require.Equal(t, "Cheapest price from A to C with at most 1 stop(s): $7\n", out)
	assert.Contains(t, logs, "search finished")
	assert.Contains(t, logs, "network loaded")

	_, _, err = run(t, "route", "--network", filepath.Join(t.TempDir(), "nope.yaml"), "--from", "A", "--to", "C")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRouteCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cheapflight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_stops: 0\nlog_json: true\nverbose: true\n"), 0o600))

	out, logs, err := run(t, "--config", path, "route", "--from", "New York", "--to", "Rome")
	require.NoError(t, err)
	assert.Contains(t, out, "No route found")
	assert.True(t, strings.HasPrefix(logs, "{"), "expected JSON logs, got %q", logs)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "demo")
	require.Error(t, err)
}

func TestGenerateCmd(t *testing.T) {
	out, _, err := run(t, "generate", "--cities", "6", "--density", "0.5", "--seed", "3")
	require.NoError(t, err)

	n, err := network.Load(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 6, n.Len())

	again, _, err := run(t, "generate", "--cities", "6", "--density", "0.5", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, _, err = run(t, "generate", "--cities", "0")
	require.ErrorIs(t, err, network.ErrBadCityCount)

	_, _, err = run(t, "generate", "--density", "NaN")
	require.ErrorIs(t, err, cheapest.ErrBadDensity)

	out, _, err = run(t, "generate", "--cities", "3", "--density", "1", "--max-cost", "9223372036854775807")
	require.NoError(t, err)
	n, err = network.Load(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, n.Flights(), 3*2)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cheapflight")
	assert.Contains(t, out, "Go version")
}
