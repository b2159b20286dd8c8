// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/agd"
)

// sysexits-style outcomes.
const (
	exitOK      = 0
	exitDataErr = 65
	exitNoInput = 66
)

func main() { os.Exit(run()) }

func run() int {
	debug := flag.Bool("debug", false, "enable debug logging")
	width := flag.Int("width", agd.DefaultLineWidthLimit, "line width limit")
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitNoInput
	}

	cfg := &agd.Config{
		Logger:         logger,
		LineWidthLimit: *width,
		Debug:          *debug,
	}

	violations, err := agd.Evaluate(context.Background(), cfg, input)
	for _, violation := range violations {
		if printErr := violation.Fprint(os.Stderr); printErr != nil {
			fmt.Fprintln(os.Stderr, printErr)
		}
	}
	if err != nil {
		if !errors.Is(err, agd.ErrIssuesPresent) {
			fmt.Fprintln(os.Stderr, err)
		}

		return exitDataErr
	}

	return exitOK
}

// readInput sources the AGD text from a file path, or stdin for "" & "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}

	data, err := os.ReadFile(path)
	return string(data), err
}
