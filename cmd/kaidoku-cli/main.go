// kaidoku.go - a Sudoku constraint-satisfaction solver and service.
// Copyright (C) 2024-2025 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Command-line batch solver for Sudoku grids.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ancientHacker/kaidoku.go/puzzle"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	budget      time.Duration
	sampleNames []string
	showTrace   bool
	logLevel    string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kaidoku-cli",
		Short:         "Solve Sudoku grids from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error)")

	solveCmd := &cobra.Command{
		Use:   "solve [file ...]",
		Short: "Solve grids from files, stdin, or the built-in samples",
		Long: `Solve reads one grid per file and solves each under the given
per-grid budget.  A file holds 81 cells in reading order: the
digits 1-9 for givens, '0' or '.' for an empty cell, whitespace
ignored.  The file name "-" means standard input.

With no files, solve works through the named built-in samples,
or all of them when none are named.`,
		Example: `  kaidoku-cli solve puzzle.txt
  kaidoku-cli solve --budget 30s - < puzzle.txt
  kaidoku-cli solve --sample reference-1 --sample five-star`,
		RunE: runSolve,
	}
	solveCmd.Flags().DurationVar(&budget, "budget", 10*time.Second, "solve budget per grid")
	solveCmd.Flags().StringArrayVar(&sampleNames, "sample", nil, "built-in sample to solve (repeatable)")
	solveCmd.Flags().BoolVar(&showTrace, "trace", true, "print the first search decisions")
	root.AddCommand(solveCmd)

	root.AddCommand(&cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample grids",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range puzzle.Samples {
				fmt.Fprintln(cmd.OutOrStdout(), s.Name)
			}
		},
	})
	return root
}

// A job is one named grid to solve.
type job struct {
	name string
	grid puzzle.Grid
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	jobs, err := collectJobs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, j := range jobs {
		fmt.Fprintf(out, "\nSolving %s...\n", j.name)
		var obs puzzle.Observer
		if showTrace {
			obs = &consoleObserver{out: out}
		}
		res, err := puzzle.SolveObserved(j.grid, budget, obs)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"grid":    j.name,
			"outcome": res.Outcome.String(),
			"nodes":   res.Nodes,
			"elapsed": res.Elapsed,
		}).Info("solve finished")
		switch res.Outcome {
		case puzzle.Solved:
			fmt.Fprint(out, res.Values)
		case puzzle.TimedOut:
			failed++
			fmt.Fprintf(out, "%s could not be solved within the time limit.\n", j.name)
		default:
			failed++
			fmt.Fprintf(out, "%s has no solution.\n", j.name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d grids went unsolved", failed, len(jobs))
	}
	return nil
}

// collectJobs assembles the batch: grids read from the file
// arguments, or the requested built-in samples, or every
// built-in sample when nothing was asked for.
func collectJobs(files []string) ([]job, error) {
	if len(files) > 0 && len(sampleNames) > 0 {
		return nil, fmt.Errorf("give files or --sample, not both")
	}
	var jobs []job
	switch {
	case len(files) > 0:
		for _, file := range files {
			grid, err := readGrid(file)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			jobs = append(jobs, job{file, grid})
		}
	case len(sampleNames) > 0:
		for _, name := range sampleNames {
			sample, ok := puzzle.SampleByName(name)
			if !ok {
				return nil, fmt.Errorf("no built-in sample named %q", name)
			}
			jobs = append(jobs, job{sample.Name, sample.Grid})
		}
	default:
		for _, sample := range puzzle.Samples {
			jobs = append(jobs, job{sample.Name, sample.Grid})
		}
	}
	return jobs, nil
}

// readGrid reads one grid from a file, with "-" meaning stdin.
func readGrid(file string) (puzzle.Grid, error) {
	var text []byte
	var err error
	if file == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(file)
	}
	if err != nil {
		return puzzle.Grid{}, err
	}
	return puzzle.ParseGrid(string(text))
}

// A consoleObserver prints each search decision it is shown,
// numbered from 1, in the classic assignment-trace form.
type consoleObserver struct {
	out   io.Writer
	count int
}

func (o *consoleObserver) Observe(a puzzle.Assignment) {
	o.count++
	fmt.Fprintf(o.out, "Assignment %d: Variable=(%d, %d), Domain Size=%d, Degree=%d, Value=%d\n",
		o.count, a.Row, a.Col, a.DomainSize, a.Degree, a.Value)
}
