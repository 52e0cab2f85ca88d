// SPDX-License-Identifier: MIT
// Package: peakfinder/cmd/peakfinder
//
// synth.go - synth command.

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/peakfinder/accel"
	"github.com/katalvlaran/peakfinder/synth"
)

const (
	sampleMillis = 20.0
	startMillis  = 1600000000000.0
	gravity      = 9.81
)

func synthCommand() *cli.Command {
	return &cli.Command{
		Name:  "synth",
		Usage: "Write a synthetic pull-up recording",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "reps",
				Usage:   "Number of repetitions on the y axis",
				Value:   12,
				EnvVars: []string{"PEAKFINDER_REPS"},
			},
			&cli.Float64Flag{
				Name:    "noise",
				Usage:   "Gaussian noise sigma added to every axis",
				EnvVars: []string{"PEAKFINDER_NOISE"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "Noise seed",
				Value:   1,
				EnvVars: []string{"PEAKFINDER_SEED"},
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "Output CSV file",
				EnvVars:  []string{"PEAKFINDER_OUT"},
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			rec, err := synthRecording(cCtx.Int("reps"), cCtx.Float64("noise"), cCtx.Int64("seed"))
			if err != nil {
				return err
			}

			path := cCtx.String("out")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("synth: %w", err)
			}
			defer f.Close()

			if err := accel.Encode(f, rec); err != nil {
				return err
			}
			log.WithFields(log.Fields{"file": path, "samples": rec.Len()}).Info("recording written")
			return f.Close()
		},
	}
}

// synthRecording lays out a pull-up set: reps on y, a small sway on x that
// stays below zero, and gravity plus jitter on z.
func synthRecording(reps int, noise float64, seed int64) (*accel.Recording, error) {
	if noise < 0 {
		return nil, fmt.Errorf("noise must be ≥ 0, got %g", noise)
	}
	y, err := synth.Reps(reps, synth.WithNoise(noise), synth.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	n := len(y)

	x, err := synth.Chirp(n,
		synth.WithAmplitude(0.2), synth.WithOffset(-1),
		synth.WithNoise(noise), synth.WithSeed(seed+1))
	if err != nil {
		return nil, err
	}

	z, err := synth.Chirp(n,
		synth.WithAmplitude(0.05), synth.WithOffset(gravity), synth.WithFrequency(0.05),
		synth.WithNoise(noise), synth.WithSeed(seed+2))
	if err != nil {
		return nil, err
	}

	ts := make([]float64, n)
	for i := range ts {
		ts[i] = startMillis + sampleMillis*float64(i)
	}

	return accel.NewRecording(ts, x, y, z)
}
