package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/okawa/aupshift/internal/config"
	"github.com/okawa/aupshift/internal/engine"
	"github.com/okawa/aupshift/internal/system"
)

var buildVersion = "dev"

func main() {
	inputPtr := flag.String("input", "", "Input project file (.aup2)")
	outputPtr := flag.String("output", "", "Output file path")
	scenePtr := flag.Int("scene", -1, "Scene id filter (-1 = all scenes)")
	layerPtr := flag.Int("layer", 0, "Target layer number")
	adjustPtr := flag.Bool("adjust", false, "Repack frame ranges so objects on a layer are contiguous")
	isolatePtr := flag.Bool("isolate", false, "Repack per scene, keeping frame numbering independent between scenes (implies -adjust)")
	txtPtr := flag.Bool("txt", false, "Write a plain-text dump instead of re-encoding the project")
	jobsPtr := flag.String("jobs", "", "YAML batch file of transforms (overrides -input/-output)")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel jobs in batch mode")
	statsPtr := flag.Bool("stats", false, "Print process resource usage after the run")
	verbosePtr := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)
	if *verbosePtr {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *inputPtr, *outputPtr, *scenePtr, *layerPtr,
		*adjustPtr, *isolatePtr, *txtPtr, *jobsPtr, *workersPtr); err != nil {
		log.Fatalf("%v", err)
	}

	if *statsPtr {
		if stats, err := system.ProcessStats(); err == nil {
			log.Infof("resource usage: %s", stats)
		}
	}
}

func run(ctx context.Context, input, output string, scene, layer int,
	adjust, isolate, txt bool, jobsPath string, workers int) error {

	if jobsPath != "" {
		system.InitResourceLimits()
		jf, err := config.LoadJobs(jobsPath)
		if err != nil {
			return err
		}
		log.Infof("batch: %d jobs, %d workers", len(jf.Jobs), workers)
		reports, err := engine.RunBatch(ctx, jf.Jobs, workers, log.StandardLogger())
		for _, rep := range reports {
			if rep != nil {
				log.Info(rep)
			}
		}
		return err
	}

	if input == "" {
		return fmt.Errorf("missing -input (or -jobs for batch mode)")
	}
	if output == "" {
		output = defaultOutput(input, txt)
		log.Infof("output defaults to %s", output)
	}

	cfg := &config.Config{
		InputPath:     input,
		OutputPath:    output,
		TargetLayer:   layer,
		AdjustFrames:  adjust,
		IsolateScenes: isolate,
		ExportText:    txt,
		BuildVersion:  buildVersion,
	}
	// -1 is the "all scenes" sentinel; any other negative value falls
	// through to the engine's range validation.
	if scene != -1 {
		cfg.Scene = &scene
	}

	rep, err := engine.New(cfg, log.StandardLogger()).Run(ctx)
	if err != nil {
		return err
	}
	log.Info(rep)
	return nil
}

func defaultOutput(input string, txt bool) string {
	base := strings.TrimSuffix(input, ".aup2")
	if txt {
		return base + ".txt"
	}
	return base + "_shifted.aup2"
}
