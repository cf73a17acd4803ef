package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/corepulse/corepulse/ecs"
)

// SystemViewer tables every registered system with its required signature,
// membership size and update timing counters.
type SystemViewer struct {
	sortColumn    int
	sortAscending bool
}

func NewSystemViewer() *SystemViewer {
	return &SystemViewer{
		sortColumn:    2,
		sortAscending: false,
	}
}

func (sv *SystemViewer) Render(w *ecs.World) {
	if !imgui.BeginV("System Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	systems := append([]ecs.SystemStats(nil), w.Stats().Systems...)
	sv.sortSystems(systems)

	maxMembers := 0
	for _, s := range systems {
		if s.EntityCount > maxMembers {
			maxMembers = s.EntityCount
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Members")
		imgui.TableSetupColumn("Updates")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.sortColumn = int(spec.ColumnIndex())
			sv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortSystems(systems)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, s := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(s.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(s.Signature)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.EntityCount))
			if maxMembers > 0 {
				barWidth := float32(s.EntityCount) / float32(maxMembers) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(formatDuration(s.LastDuration))

			imgui.TableNextColumn()
			imgui.Text(formatDuration(s.AvgDuration))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (sv *SystemViewer) sortSystems(systems []ecs.SystemStats) {
	sort.Slice(systems, func(i, j int) bool {
		a, b := systems[i], systems[j]
		var less bool

		switch sv.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = a.EntityCount < b.EntityCount
		case 3:
			less = a.ExecutionCount < b.ExecutionCount
		case 4:
			less = a.LastDuration < b.LastDuration
		case 5:
			less = a.AvgDuration < b.AvgDuration
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !sv.sortAscending {
			return !less
		}
		return less
	})
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
