package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/raywang13/GameofLife/gol"
)

const usageText = `usage: %s [flags] <r> <s> <rows> <cols> <max> <i|g>
       r = number of rows of threads
       s = number of columns of threads
    rows = number of rows in the world
    cols = number of cols in the world
     max = max number of generations
       i = user will enter generation 0
       g = program should generate generation 0
`

var errUsage = errors.New("usage")

// parseArgs builds Params from the six positional arguments.
func parseArgs(args []string, p *gol.Params) error {
	if len(args) != 6 {
		return errUsage
	}
	targets := []*int{&p.ThreadRows, &p.ThreadCols, &p.ImageHeight, &p.ImageWidth, &p.MaxGenerations}
	for i, target := range targets {
		value, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", errUsage, args[i])
		}
		*target = value
	}
	if len(args[5]) != 1 {
		return fmt.Errorf("%w: mode %q", errUsage, args[5])
	}
	p.Mode = gol.Mode(args[5][0])
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, usageText, args[0])
		flags.PrintDefaults()
	}

	var p gol.Params
	flags.Int64Var(&p.Seed, "seed", 1, "Seed of the random source used in generate mode.")
	flags.BoolVar(&p.Uneven, "uneven", false, "Allow a thread topology that does not divide the world; the last row and column of tiles take the remainder.")
	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}
	if err := parseArgs(flags.Args(), &p); err != nil {
		if err != errUsage {
			logger.Print(err)
		}
		flags.Usage()
		return 2
	}

	result, err := gol.Run(p, stdin, stdout, nil)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if result.Extinct {
		logger.Printf("all cells died at generation %d", result.Generations+1)
	} else {
		logger.Printf("completed %d generations, %d cells alive", result.Generations, len(result.Alive))
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
