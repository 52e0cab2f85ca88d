// SPDX-License-Identifier: MIT
// Package: peakfinder/cmd/peakfinder
//
// main.go - application wiring and global flags.

// Command peakfinder scans accelerometer CSV recordings for peaks.
//
//	peakfinder scan --csv pullups.csv --threshold 0
//	peakfinder scan --csv pullups.csv --sigmas 1.5 --axis y --chart y.html
//	peakfinder stats --csv pullups.csv
//	peakfinder synth --reps 12 --out synthetic.csv
//
// Every flag can also be set through its PEAKFINDER_* environment variable.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp wires the commands; output goes to App.Writer, logs to logrus.
func newApp() *cli.App {
	return &cli.App{
		Name:                 "peakfinder",
		Usage:                "Find peaks in accelerometer recordings",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logrus level (trace, debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"PEAKFINDER_LOG_LEVEL"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			lvl, err := log.ParseLevel(cCtx.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
		Commands: []*cli.Command{
			scanCommand(),
			statsCommand(),
			synthCommand(),
		},
	}
}

// csvFlag is shared by the commands that read a recording.
func csvFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "csv",
		Aliases:  []string{"f"},
		Usage:    "CSV file in the format timestamp,x,y,z",
		EnvVars:  []string{"PEAKFINDER_CSV"},
		Required: true,
	}
}
