// Package engine drives the transform pipeline: read, parse, build the
// model, reassign layers, repack frame ranges, serialize, write. The
// stages are strictly linear and keep no state between invocations; a
// failure at any stage aborts the run before any output is written.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/okawa/aupshift/internal/aup"
	"github.com/okawa/aupshift/internal/config"
	"github.com/okawa/aupshift/internal/model"
	"github.com/okawa/aupshift/internal/serialize"
	"github.com/okawa/aupshift/internal/transform"
)

type Pipeline struct {
	Config *config.Config
	Log    *log.Logger
}

func New(cfg *config.Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Pipeline{Config: cfg, Log: logger}
}

// Run executes one full transform. Cancellation is cooperative and
// checked between stages only, since the stage algorithms themselves
// are short linear scans.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	cfg := p.Config

	opts := transform.Options{
		Scene:         cfg.Scene,
		TargetLayer:   cfg.TargetLayer,
		AdjustFrames:  cfg.AdjustFrames,
		IsolateScenes: cfg.IsolateScenes,
		ExportText:    cfg.ExportText,
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.InputPath, err)
	}
	doc, err := aup.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cfg.InputPath, err)
	}
	prj, err := model.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("building model from %s: %w", cfg.InputPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	moved := transform.Reassign(prj, opts.TargetLayer, opts.Scene)
	if moved == 0 {
		// An unmatched scene filter is a no-op success, not an error.
		p.Log.Warnf("%s: selection matched no objects", cfg.InputPath)
	} else {
		p.Log.Infof("%s: moved %d objects to layer %d", cfg.InputPath, moved, opts.TargetLayer)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranges := 0
	if opts.IsolateScenes {
		ranges = transform.Isolate(prj)
	} else if opts.AdjustFrames {
		ranges = transform.Compact(prj, opts.Scene)
	}
	if opts.Adjusting() {
		transform.Refocus(prj)
		p.Log.Infof("%s: repacked %d frame ranges", cfg.InputPath, ranges)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Serialize to memory first so a failed run never leaves a partial
	// output file behind.
	var buf bytes.Buffer
	if opts.ExportText {
		err = serialize.WriteText(&buf, prj)
	} else {
		_, err = serialize.Records(prj).WriteTo(&buf)
	}
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	return &Report{
		Input:        cfg.InputPath,
		Output:       cfg.OutputPath,
		Scenes:       len(prj.Scenes),
		Objects:      prj.ObjectCount(),
		ObjectsMoved: moved,
		RangesMoved:  ranges,
		Layers:       prj.LayerDistribution(),
		Elapsed:      time.Since(start),
	}, nil
}
