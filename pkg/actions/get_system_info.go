package actions

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type getSystemInfo struct{}

func NewGetSystemInfo() *getSystemInfo { return &getSystemInfo{} }

func (g *getSystemInfo) Name() string { return "get_system_info" }

func (g *getSystemInfo) Description() string {
	return "Returns OS, CPU and memory usage information"
}

func (g *getSystemInfo) Parameters() domain.Definition { return domain.Definition{} }

func (g *getSystemInfo) Execute(ctx context.Context, _ map[string]any) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching host info: %w", err)
	}

	cpuPercents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return "", fmt.Errorf("fetching cpu usage: %w", err)
	}
	var cpuUsage float64
	if len(cpuPercents) > 0 {
		cpuUsage = cpuPercents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching memory usage: %w", err)
	}

	return fmt.Sprintf("OS: %s %s, CPU usage: %.1f%%, memory usage: %.1f%%",
		info.Platform, info.PlatformVersion, cpuUsage, vm.UsedPercent), nil
}
