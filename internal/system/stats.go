package system

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a snapshot of the current process resource usage.
type Stats struct {
	RSSBytes   uint64
	CPUSeconds float64
}

// ProcessStats samples memory and CPU usage of the running process,
// printed after a run when stats were requested.
func ProcessStats() (*Stats, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("inspecting own process: %w", err)
	}

	stats := &Stats{}
	if mem, err := proc.MemoryInfo(); err == nil {
		stats.RSSBytes = mem.RSS
	}
	if times, err := proc.Times(); err == nil {
		stats.CPUSeconds = times.User + times.System
	}
	return stats, nil
}

func (s *Stats) String() string {
	return fmt.Sprintf("rss=%.1fMB cpu=%.2fs", float64(s.RSSBytes)/(1024*1024), s.CPUSeconds)
}
