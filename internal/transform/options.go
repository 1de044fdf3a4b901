// Package transform rewrites layer assignments and frame ranges on an
// in-memory project. All stages are pure and synchronous: they mutate
// the model they are given and keep everything they do not own (global
// settings, effects, unrecognized fields) untouched.
package transform

import "fmt"

// RangeError reports a parameter outside its documented domain, e.g. a
// negative target layer. It is fatal before any stage runs.
type RangeError struct {
	Param string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range: must be a non-negative integer", e.Param, e.Value)
}

// Options selects what a pipeline run does. A nil Scene means all
// scenes. IsolateScenes implies a frame adjustment.
type Options struct {
	Scene         *int
	TargetLayer   int
	AdjustFrames  bool
	IsolateScenes bool
	ExportText    bool
}

// Validate checks the parameter domain before any stage runs.
func (o Options) Validate() error {
	if o.TargetLayer < 0 {
		return &RangeError{Param: "target layer", Value: o.TargetLayer}
	}
	if o.Scene != nil && *o.Scene < 0 {
		return &RangeError{Param: "scene id", Value: *o.Scene}
	}
	return nil
}

// Adjusting reports whether a frame adjustment will run.
func (o Options) Adjusting() bool {
	return o.AdjustFrames || o.IsolateScenes
}
