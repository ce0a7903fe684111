package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

type Usage struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Percent float64 `json:"percent"`
}

type NICCounters struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
}

// Snapshot is one sample of host resource usage. TS is seconds since the
// Unix epoch.
type Snapshot struct {
	TS            float64                `json:"ts"`
	CPUPercent    float64                `json:"cpu_percent"`
	VirtualMemory Usage                  `json:"virtual_memory"`
	Disk          Usage                  `json:"disk"`
	Net           map[string]NICCounters `json:"net"`
}

// DiskPath is the mount point whose usage is sampled.
var DiskPath = "/"

// TakeSnapshot samples CPU, memory, root disk and per-NIC counters. CPU usage
// is measured against the previous call, so the first value may be zero.
func TakeSnapshot(ctx context.Context) (Snapshot, error) {

	snap := Snapshot{
		TS:  float64(time.Now().UnixNano()) / float64(time.Second),
		Net: map[string]NICCounters{},
	}

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return snap, fmt.Errorf("cpu: %w", err)
	}
	if len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("memory: %w", err)
	}
	snap.VirtualMemory = Usage{Total: vm.Total, Used: vm.Used, Percent: vm.UsedPercent}

	du, err := disk.UsageWithContext(ctx, DiskPath)
	if err != nil {
		return snap, fmt.Errorf("disk %s: %w", DiskPath, err)
	}
	snap.Disk = Usage{Total: du.Total, Used: du.Used, Percent: du.UsedPercent}

	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return snap, fmt.Errorf("net: %w", err)
	}
	for _, c := range counters {
		snap.Net[c.Name] = NICCounters{
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
		}
	}

	return snap, nil
}
