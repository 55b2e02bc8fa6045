// Package sysstats reads an instantaneous CPU/memory snapshot for ambient
// diagnostic logging around expensive stages (the Hebbian fill in
// training). Grounded on zeam-labs-zeam-testnet's use of
// github.com/shirou/gopsutil/v3 to gate and log compute activity. Nothing
// here feeds back into the Hebbian arithmetic: a failed snapshot is logged
// and the caller proceeds as if no snapshot were requested.
package sysstats

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot is a point-in-time resource reading.
type Snapshot struct {
	CPUPercent    float64
	MemUsedBytes  uint64
	MemTotalBytes uint64
	MemPercent    float64
}

// String renders a one-line human-readable summary.
func (s Snapshot) String() string {
	return fmt.Sprintf("cpu=%.1f%% mem=%.1f%% (%d/%d MiB)",
		s.CPUPercent, s.MemPercent, s.MemUsedBytes/(1<<20), s.MemTotalBytes/(1<<20))
}

// Take samples CPU percent over a zero-length interval (instantaneous,
// non-blocking best effort per gopsutil's convention) and current virtual
// memory usage. Errors from either source are returned wrapped; callers in
// this repo treat a Take failure as non-fatal.
func Take() (Snapshot, error) {
	cpuPercents, err := cpu.Percent(0, false)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sysstats.Take: cpu: %w", err)
	}
	var cpuPct float64
	if len(cpuPercents) > 0 {
		cpuPct = cpuPercents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return Snapshot{}, fmt.Errorf("sysstats.Take: mem: %w", err)
	}

	return Snapshot{
		CPUPercent:    cpuPct,
		MemUsedBytes:  vm.Used,
		MemTotalBytes: vm.Total,
		MemPercent:    vm.UsedPercent,
	}, nil
}
