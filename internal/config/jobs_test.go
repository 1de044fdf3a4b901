package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJobsWriteLoad(t *testing.T) {
	scene := 2
	jf := &JobFile{
		Version: "1.0",
		Jobs: []Job{
			{Input: "a.aup2", Output: "a_out.aup2", Scene: &scene, Layer: 3, AdjustFrames: true},
			{Input: "b.aup2", Output: "b.txt", ExportText: true},
		},
	}

	path := filepath.Join(t.TempDir(), "jobs.yaml")
	if err := WriteJobs(jf, path); err != nil {
		t.Fatalf("WriteJobs failed: %v", err)
	}

	loaded, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("LoadJobs failed: %v", err)
	}

	if len(loaded.Jobs) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(loaded.Jobs))
	}

	j0 := loaded.Jobs[0]
	if j0.Scene == nil || *j0.Scene != 2 || j0.Layer != 3 || !j0.AdjustFrames {
		t.Errorf("Job 0 round trip wrong: %+v", j0)
	}
	if loaded.Jobs[1].Scene != nil {
		t.Errorf("Absent scene filter should stay nil, got %v", *loaded.Jobs[1].Scene)
	}

	cfg := j0.Config()
	if cfg.InputPath != "a.aup2" || cfg.TargetLayer != 3 || !cfg.AdjustFrames {
		t.Errorf("Job to Config expansion wrong: %+v", cfg)
	}
}

func TestLoadJobsValidation(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	os.WriteFile(empty, []byte("version: \"1.0\"\njobs: []\n"), 0644)
	if _, err := LoadJobs(empty); err == nil {
		t.Error("Expected error for a job file with no jobs")
	}

	missing := filepath.Join(dir, "missing.yaml")
	os.WriteFile(missing, []byte("jobs:\n  - input: a.aup2\n"), 0644)
	if _, err := LoadJobs(missing); err == nil {
		t.Error("Expected error for a job without an output path")
	}

	if _, err := LoadJobs(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("Expected error for a nonexistent file")
	}
}
