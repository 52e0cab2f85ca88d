// SPDX-License-Identifier: MIT
// Package: peakfinder/cmd/peakfinder
//
// scan.go - scan command and peak report.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/peakfinder/accel"
	"github.com/katalvlaran/peakfinder/peaks"
)

// axisResult is one scanned axis, kept for printing and charting.
type axisResult struct {
	name      string
	samples   []float64
	threshold float64
	peaks     []peaks.Peak
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"s"},
		Usage:   "Print the peaks of every selected axis",
		Flags: []cli.Flag{
			csvFlag(),
			&cli.Float64Flag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Peaks must reach this value to be considered",
				Value:   0.0,
				EnvVars: []string{"PEAKFINDER_THRESHOLD"},
			},
			&cli.Float64Flag{
				Name:    "sigmas",
				Usage:   "Use mean + sigmas*stddev of each axis as its threshold (overrides --threshold)",
				EnvVars: []string{"PEAKFINDER_SIGMAS"},
			},
			&cli.StringSliceFlag{
				Name:    "axis",
				Usage:   "Axes to scan",
				Value:   cli.NewStringSlice(accel.AxisX, accel.AxisY, accel.AxisZ),
				EnvVars: []string{"PEAKFINDER_AXIS"},
			},
			&cli.BoolFlag{
				Name:    "legacy-zero",
				Usage:   "Treat sample 0 as unset, like PeakFinder 1.x",
				EnvVars: []string{"PEAKFINDER_LEGACY_ZERO"},
			},
			&cli.Float64Flag{
				Name:    "min-area",
				Usage:   "Drop peaks with a smaller area",
				EnvVars: []string{"PEAKFINDER_MIN_AREA"},
			},
			&cli.IntFlag{
				Name:    "max-peaks",
				Usage:   "Stop after this many peaks per axis (0 = no limit)",
				EnvVars: []string{"PEAKFINDER_MAX_PEAKS"},
			},
			&cli.StringFlag{
				Name:    "chart",
				Usage:   "Also render an HTML chart to this file",
				EnvVars: []string{"PEAKFINDER_CHART"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			rec, err := accel.ReadCSV(cCtx.String("csv"))
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"file":    cCtx.String("csv"),
				"samples": rec.Len(),
			}).Debug("recording loaded")

			results, err := scanRecording(rec, cCtx.StringSlice("axis"), scanSettings{
				threshold:  cCtx.Float64("threshold"),
				sigmas:     cCtx.Float64("sigmas"),
				useSigmas:  cCtx.IsSet("sigmas"),
				legacyZero: cCtx.Bool("legacy-zero"),
				minArea:    cCtx.Float64("min-area"),
				useMinArea: cCtx.IsSet("min-area"),
				maxPeaks:   cCtx.Int("max-peaks"),
			})
			if err != nil {
				return err
			}

			if err := writeReport(cCtx.App.Writer, results); err != nil {
				return err
			}

			if path := cCtx.String("chart"); path != "" {
				if err := renderChart(path, cCtx.String("csv"), results); err != nil {
					return err
				}
				log.WithField("file", path).Info("chart written")
			}
			return nil
		},
	}
}

// scanSettings is the resolved scan configuration of one invocation.
type scanSettings struct {
	threshold  float64
	sigmas     float64
	useSigmas  bool
	legacyZero bool
	minArea    float64
	useMinArea bool
	maxPeaks   int
}

func (s scanSettings) options() ([]peaks.Option, error) {
	var opts []peaks.Option
	if s.legacyZero {
		opts = append(opts, peaks.WithZeroIndexUnset())
	}
	if s.useMinArea {
		if math.IsNaN(s.minArea) {
			return nil, fmt.Errorf("min-area must be a number, got %g", s.minArea)
		}
		opts = append(opts, peaks.WithMinArea(s.minArea))
	}
	if s.useSigmas && (math.IsNaN(s.sigmas) || math.IsInf(s.sigmas, 0)) {
		return nil, fmt.Errorf("sigmas must be finite, got %g", s.sigmas)
	}
	if !s.useSigmas && math.IsNaN(s.threshold) {
		return nil, fmt.Errorf("threshold must be a number, got %g", s.threshold)
	}
	if s.maxPeaks < 0 {
		return nil, fmt.Errorf("max-peaks must be ≥ 0, got %d", s.maxPeaks)
	}
	if s.maxPeaks > 0 {
		opts = append(opts, peaks.WithMaxPeaks(s.maxPeaks))
	}
	return opts, nil
}

// scanRecording scans each named axis independently.
func scanRecording(rec *accel.Recording, axes []string, s scanSettings) ([]axisResult, error) {
	opts, err := s.options()
	if err != nil {
		return nil, err
	}

	results := make([]axisResult, 0, len(axes))
	for _, name := range axes {
		samples, err := rec.Axis(name)
		if err != nil {
			return nil, err
		}

		threshold := s.threshold
		if s.useSigmas {
			if threshold, err = peaks.StdDevThreshold(samples, s.sigmas); err != nil {
				return nil, fmt.Errorf("axis %s: %w", name, err)
			}
		}

		found := peaks.FindPeaksOverThreshold(samples, threshold, opts...)
		log.WithFields(log.Fields{
			"axis":      name,
			"threshold": threshold,
			"peaks":     len(found),
		}).Info("axis scanned")

		results = append(results, axisResult{
			name:      strings.ToLower(strings.TrimSpace(name)),
			samples:   samples,
			threshold: threshold,
			peaks:     found,
		})
	}
	return results, nil
}

// writeReport prints one block per axis:
//
//	Y-Axis Peaks
//	{ (0, -1), (2, 3), (5, -1.2), 3.9 }
func writeReport(w io.Writer, results []axisResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s-Axis Peaks\n", strings.ToUpper(r.name)); err != nil {
			return err
		}
		for _, p := range r.peaks {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
	}
	return nil
}
