// Package pipeline plans which record pairs to align, runs them through an
// Aligner on a bounded set of goroutines, and hands hits to a visit callback
// in plan order.
//
// The only contract to implement is Aligner.
package pipeline
