// Package config carries the per-invocation settings of a transform
// run. The core takes one explicit Config per pipeline invocation and
// keeps no ambient state between runs.
package config

type Config struct {
	InputPath     string
	OutputPath    string
	Scene         *int // nil = all scenes
	TargetLayer   int
	AdjustFrames  bool
	IsolateScenes bool
	ExportText    bool
	Workers       int
	ShowStats     bool
	BuildVersion  string
}
