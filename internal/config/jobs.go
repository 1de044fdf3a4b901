package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job is one transform described in a batch file. Field names mirror
// the CLI flags.
type Job struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	Scene         *int   `yaml:"scene,omitempty"`
	Layer         int    `yaml:"layer"`
	AdjustFrames  bool   `yaml:"adjust_frames,omitempty"`
	IsolateScenes bool   `yaml:"isolate_scenes,omitempty"`
	ExportText    bool   `yaml:"export_text,omitempty"`
}

// JobFile is a YAML batch description: a list of independent transforms
// processed in parallel.
type JobFile struct {
	Version string `yaml:"version"`
	Jobs    []Job  `yaml:"jobs"`
}

// Config expands a job into a full per-invocation Config.
func (j Job) Config() Config {
	return Config{
		InputPath:     j.Input,
		OutputPath:    j.Output,
		Scene:         j.Scene,
		TargetLayer:   j.Layer,
		AdjustFrames:  j.AdjustFrames,
		IsolateScenes: j.IsolateScenes,
		ExportText:    j.ExportText,
	}
}

// LoadJobs reads a YAML batch file.
func LoadJobs(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("job file %s lists no jobs", path)
	}
	for i, j := range jf.Jobs {
		if j.Input == "" || j.Output == "" {
			return nil, fmt.Errorf("job %d: input and output are required", i)
		}
	}
	return &jf, nil
}

// WriteJobs writes a YAML batch file.
func WriteJobs(jf *JobFile, path string) error {
	data, err := yaml.Marshal(jf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
