package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/corepulse/corepulse/ecs"
)

type entityInfo struct {
	ID             ecs.Entity
	Signature      ecs.Signature
	ComponentNames []string
	ComponentCount int
}

type entityBrowserCache struct {
	entities      []entityInfo
	lastCreated   uint64
	lastLiving    int
	lastKindCount int
	sortColumn    int
	sortAscending bool
}

// EntityBrowser lists every live entity with its signature and attached
// component kinds. Rows are selectable; the selection feeds the component
// inspector.
type EntityBrowser struct {
	cache           *entityBrowserCache
	selectedEntity  ecs.Entity
	filterText      string
	entitiesPerPage int
	currentPage     int
}

// NewEntityBrowser creates a browser showing at most entitiesPerPage rows
// per page.
func NewEntityBrowser(entitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		cache: &entityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		entitiesPerPage: entitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := eb.filteredEntities()

		startIdx := eb.currentPage * eb.entitiesPerPage
		endIdx := min(startIdx+eb.entitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			info := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = info.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(info.Signature)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.ComponentNames, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.ComponentCount))
		}

		imgui.EndTable()
	}

	filtered := eb.filteredEntities()
	if len(filtered) > eb.entitiesPerPage {
		totalPages := (len(filtered) + eb.entitiesPerPage - 1) / eb.entitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) rebuildCacheIfNeeded(w *ecs.World) {
	stats := w.Stats()
	if eb.cache.lastCreated != stats.EntitiesCreated ||
		eb.cache.lastLiving != stats.Entities ||
		eb.cache.lastKindCount != stats.ComponentKinds {
		eb.cache.entities = nil
		eb.cache.lastCreated = stats.EntitiesCreated
		eb.cache.lastLiving = stats.Entities
		eb.cache.lastKindCount = stats.ComponentKinds
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(w)
	}
}

func (eb *EntityBrowser) rebuildCache(w *ecs.World) {
	types := w.ComponentTypes()
	eb.cache.entities = make([]entityInfo, 0, 1024)

	for e := range w.Entities() {
		sig := w.Signature(e)
		var names []string
		for id, t := range types {
			if sig.Has(ecs.ComponentID(id)) {
				names = append(names, t.String())
			}
		}
		eb.cache.entities = append(eb.cache.entities, entityInfo{
			ID:             e,
			Signature:      sig,
			ComponentNames: names,
			ComponentCount: len(names),
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = strings.Join(a.ComponentNames, ",") < strings.Join(b.ComponentNames, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]entityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, info := range eb.cache.entities {
		idStr := fmt.Sprintf("%d", info.ID)
		sigStr := fmt.Sprintf("0x%x", uint64(info.Signature))
		namesStr := strings.ToLower(strings.Join(info.ComponentNames, " "))

		if strings.Contains(idStr, filterLower) ||
			strings.Contains(sigStr, filterLower) ||
			strings.Contains(namesStr, filterLower) {
			filtered = append(filtered, info)
		}
	}

	return filtered
}

// SelectedEntity returns the entity picked in the table, or NullEntity.
func (eb *EntityBrowser) SelectedEntity() ecs.Entity {
	return eb.selectedEntity
}
