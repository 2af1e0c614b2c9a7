package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywang13/GameofLife/gol"
)

func TestParseArgs(t *testing.T) {
	var p gol.Params
	require.NoError(t, parseArgs([]string{"2", "3", "8", "9", "10", "g"}, &p))
	assert.Equal(t, gol.Params{
		ThreadRows:     2,
		ThreadCols:     3,
		ImageHeight:    8,
		ImageWidth:     9,
		MaxGenerations: 10,
		Mode:           gol.GenerateMode,
	}, p)
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"2", "3", "8", "9", "10"},
		{"2", "3", "8", "9", "10", "i", "extra"},
		{"two", "3", "8", "9", "10", "i"},
		{"2", "3", "8", "9", "10", "in"},
	} {
		var p gol.Params
		assert.ErrorIs(t, parseArgs(args, &p), errUsage, "%v", args)
	}
}

func TestRunUsage(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run([]string{"life", "1", "1"}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "usage: life [flags] <r> <s> <rows> <cols> <max> <i|g>")
	assert.Contains(t, stderr.String(), "-seed")
}

func TestRunConfigurationError(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run([]string{"life", "2", "2", "5", "4", "3", "i"}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), gol.ErrUnevenTopology.Error())
}

func TestRunUnevenFlag(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run([]string{"life", "-uneven", "2", "2", "5", "4", "3", "g"}, strings.NewReader("1\n"), stdout, stderr)

	// A full world dies of overcrowding in the first round
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Generation 0\n")
	assert.NotContains(t, stdout.String(), "Generation 1\n")
	assert.Equal(t, "all cells died at generation 1\n", stderr.String())
}

func TestRunCompletes(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	input := "\n XX\n XX\n\n"
	code := run([]string{"life", "2", "2", "4", "4", "3", "i"}, strings.NewReader(input), stdout, stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Generation 3\n")
	assert.Equal(t, "completed 3 generations, 4 cells alive\n", stderr.String())
}
