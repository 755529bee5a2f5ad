// Package diag samples process statistics for the debug overlay.
package diag

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

type Stats struct {
	proc *process.Process
}

func New() (*Stats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("open process: %w", err)
	}
	return &Stats{proc: p}, nil
}

// Line renders a one-line summary of process CPU and memory usage.
// Sampling failures degrade to a placeholder instead of erroring: the
// overlay is best-effort.
func (s *Stats) Line() string {
	cpu, err := s.proc.CPUPercent()
	if err != nil {
		return "cpu: n/a"
	}
	mem, err := s.proc.MemoryInfo()
	if err != nil || mem == nil {
		return fmt.Sprintf("cpu: %.1f%%", cpu)
	}
	return fmt.Sprintf("cpu: %.1f%%, rss: %.1f MB", cpu, float64(mem.RSS)/(1024*1024))
}
