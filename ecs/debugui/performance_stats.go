package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/corepulse/corepulse/ecs"
)

// PerformanceStats plots host frame times and shows world counters with a
// per-system timing breakdown.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStats) Render(w *ecs.World, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := w.Stats()

	imgui.Text(fmt.Sprintf("Entities: %d / %d", stats.Entities, stats.EntityCapacity))
	imgui.Text(fmt.Sprintf("Entities Created: %d", stats.EntitiesCreated))
	imgui.Text(fmt.Sprintf("Component Kinds: %d", stats.ComponentKinds))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("World Updates: %d", stats.TotalUpdates))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Breakdown") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Members")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.EntityCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(s.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(s.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between frames for hosts that do not
// get a delta from their game loop.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
