// SPDX-License-Identifier: MIT
// Package: peakfinder/cmd/peakfinder
//
// chart.go - HTML chart rendering.

package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// gap is how echarts marks a missing point in a line series.
const gap = "-"

// renderChart writes one line chart per scanned axis into a single HTML page.
func renderChart(path, source string, results []axisResult) error {
	page := components.NewPage()
	page.PageTitle = "peakfinder: " + source
	for _, r := range results {
		page.AddCharts(axisChart(r))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("chart: render %s: %w", path, err)
	}
	return f.Close()
}

// axisChart plots the samples, the threshold and the summit of every peak.
func axisChart(r axisResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    fmt.Sprintf("%s axis", r.name),
		Subtitle: fmt.Sprintf("threshold %.4g, %d peaks", r.threshold, len(r.peaks)),
	}))

	line.SetXAxis(rng(len(r.samples))).
		AddSeries("samples", sampleSeries(r.samples)).
		AddSeries("threshold", thresholdSeries(len(r.samples), r.threshold)).
		AddSeries("summits", summitSeries(r))
	return line
}

func rng(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

func sampleSeries(samples []float64) []opts.LineData {
	data := make([]opts.LineData, len(samples))
	for i, v := range samples {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func thresholdSeries(n int, threshold float64) []opts.LineData {
	data := make([]opts.LineData, n)
	for i := range data {
		data[i] = opts.LineData{Value: threshold}
	}
	return data
}

// summitSeries is blank everywhere except at summit indices.
func summitSeries(r axisResult) []opts.LineData {
	data := make([]opts.LineData, len(r.samples))
	for i := range data {
		data[i] = opts.LineData{Value: gap}
	}
	for _, p := range r.peaks {
		if i := p.Summit.Index; i >= 0 && i < len(data) {
			data[i] = opts.LineData{Value: p.Summit.Value, Symbol: "triangle", SymbolSize: 12}
		}
	}
	return data
}
