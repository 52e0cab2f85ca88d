// Package accel reads and writes three-axis accelerometer recordings in
// the "timestamp,x,y,z" CSV layout used by the peakfinder tools.
//
// A recording is loaded completely into memory; each axis is a plain
// []float64 ready for the peaks package. Malformed input fails the whole
// read with ErrMalformedRecord and the offending line number: nothing
// partial is ever returned.
package accel
