package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/graphio"
)

func writeGraph(t *testing.T, dir, name string, cons builder.Constructor) string {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, cons)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, graphio.WriteFile(path, g))

	return path
}

func TestRun_SuccessRate(t *testing.T) {
	path := writeGraph(t, t.TempDir(), "barbell.txt", builder.Barbell(3))
	in := strings.NewReader("2\n" + path + "\n1\n3\n")

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"--seed=7", "--workers=2"}, in, &out, &errOut))
	assert.Equal(t, "Iterations,SuccessRate\n1,1\n5,1\n10,1\n20,1\n50,1\n100,1\n150,1\n", out.String())
}

func TestRun_Runtime(t *testing.T) {
	dir := t.TempDir()
	a := writeGraph(t, dir, "a.txt", builder.Cycle(5))
	b := writeGraph(t, dir, "b.txt", builder.Complete(7))
	in := strings.NewReader("1\n" + a + "\n" + b + "\ndone\n")

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"--seed=1", "--strategy=karger", "--log-level=error"}, in, &out, &errOut))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "n,time_ms", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "5,"))
	assert.True(t, strings.HasPrefix(lines[2], "7,"))
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "mincut.yaml")
	require.NoError(t, writeFile(cfgPath, "experiment:\n  budgets: [2]\nrun:\n  seed: 3\n"))
	path := writeGraph(t, dir, "cycle.txt", builder.Cycle(10))

	var out, errOut bytes.Buffer
	in := strings.NewReader("2 " + path + " 2 4")
	require.NoError(t, run([]string{"--config", cfgPath}, in, &out, &errOut))
	assert.Equal(t, "Iterations,SuccessRate\n2,1\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Error(t, run([]string{"--no-such-flag"}, strings.NewReader(""), &out, &errOut))
	assert.ErrorIs(t, run(nil, strings.NewReader("9\n"), &out, &errOut), graphio.ErrBadRequest)
	assert.Error(t, run([]string{"--strategy=magic"}, strings.NewReader("1\ndone\n"), &out, &errOut))
	assert.Error(t, run([]string{"--config", "/nonexistent/mincut.yaml"}, strings.NewReader("1\ndone\n"), &out, &errOut))
}

func TestRun_Timeout(t *testing.T) {
	path := writeGraph(t, t.TempDir(), "needle.txt", builder.Needle(60, 0.5))
	in := strings.NewReader("1\n" + path + "\ndone\n")

	var out, errOut bytes.Buffer
	err := run([]string{"--seed=1", "--timeout=1ns"}, in, &out, &errOut)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
