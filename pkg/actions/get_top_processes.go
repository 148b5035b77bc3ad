package actions

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

const defaultProcessLimit = 5

type processInfo struct {
	pid        int32
	name       string
	cpuPercent float64
	memPercent float32
}

type getTopProcesses struct{}

func NewGetTopProcesses() *getTopProcesses { return &getTopProcesses{} }

func (g *getTopProcesses) Name() string { return "get_top_processes" }

func (g *getTopProcesses) Description() string {
	return "Returns the top processes by CPU and by memory usage"
}

func (g *getTopProcesses) Parameters() domain.Definition {
	return domain.Definition{
		Properties: map[string]domain.Property{
			"limit": {Type: domain.Integer, Description: "How many processes to list per category"},
		},
	}
}

func (g *getTopProcesses) Execute(ctx context.Context, params map[string]any) (string, error) {
	limit := intParam(params, "limit", defaultProcessLimit)

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("listing processes: %w", err)
	}

	infos := make([]processInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// The process may have exited, or access is denied.
			continue
		}
		cpuPercent, _ := p.CPUPercentWithContext(ctx)
		memPercent, _ := p.MemoryPercentWithContext(ctx)
		infos = append(infos, processInfo{
			pid:        p.Pid,
			name:       name,
			cpuPercent: cpuPercent,
			memPercent: memPercent,
		})
	}

	byCPU := make([]processInfo, len(infos))
	copy(byCPU, infos)
	sort.Slice(byCPU, func(i, j int) bool { return byCPU[i].cpuPercent > byCPU[j].cpuPercent })

	byMem := make([]processInfo, len(infos))
	copy(byMem, infos)
	sort.Slice(byMem, func(i, j int) bool { return byMem[i].memPercent > byMem[j].memPercent })

	if len(byCPU) > limit {
		byCPU = byCPU[:limit]
	}
	if len(byMem) > limit {
		byMem = byMem[:limit]
	}

	cpuLines := lo.Map(byCPU, func(p processInfo, _ int) string {
		return fmt.Sprintf("%s (pid %d, cpu %.1f%%)", p.name, p.pid, p.cpuPercent)
	})
	memLines := lo.Map(byMem, func(p processInfo, _ int) string {
		return fmt.Sprintf("%s (pid %d, mem %.1f%%)", p.name, p.pid, p.memPercent)
	})

	return fmt.Sprintf("Top CPU: %s. Top memory: %s",
		strings.Join(cpuLines, ", "), strings.Join(memLines, ", ")), nil
}
