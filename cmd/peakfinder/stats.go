// SPDX-License-Identifier: MIT
// Package: peakfinder/cmd/peakfinder
//
// stats.go - stats command.

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/peakfinder/accel"
	"github.com/katalvlaran/peakfinder/stats"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print mean and standard deviation of every axis",
		Flags: []cli.Flag{csvFlag()},
		Action: func(cCtx *cli.Context) error {
			rec, err := accel.ReadCSV(cCtx.String("csv"))
			if err != nil {
				return err
			}

			for _, name := range rec.Axes() {
				samples, err := rec.Axis(name)
				if err != nil {
					return err
				}
				mean, sd, err := stats.MeanStdDev(samples)
				if err != nil {
					return fmt.Errorf("axis %s: %w", name, err)
				}
				log.WithFields(log.Fields{"axis": name, "n": len(samples)}).Debug("axis summarized")
				fmt.Fprintf(cCtx.App.Writer, "%s: n=%d mean=%.6g stddev=%.6g\n", name, len(samples), mean, sd)
			}
			return nil
		},
	}
}
