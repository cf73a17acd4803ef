package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/corepulse/corepulse/ecs"
)

// SignatureDebugger builds a signature mask from checkboxes over the
// registered component kinds and reports which live entities satisfy it.
// Useful for checking why a system's membership is smaller than expected.
type SignatureDebugger struct {
	selectedIDs map[ecs.ComponentID]bool
}

func NewSignatureDebugger() *SignatureDebugger {
	return &SignatureDebugger{
		selectedIDs: make(map[ecs.ComponentID]bool),
	}
}

func (sd *SignatureDebugger) Render(w *ecs.World) {
	if !imgui.BeginV("Signature Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		sd.selectedIDs = make(map[ecs.ComponentID]bool)
	}

	types := w.ComponentTypes()
	for id, t := range types {
		cid := ecs.ComponentID(id)
		selected := sd.selectedIDs[cid]
		if imgui.Checkbox(fmt.Sprintf("%s (bit %d)", t.String(), id), &selected) {
			if selected {
				sd.selectedIDs[cid] = true
			} else {
				delete(sd.selectedIDs, cid)
			}
		}
	}

	imgui.Separator()

	if len(sd.selectedIDs) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	var required ecs.Signature
	for cid := range sd.selectedIDs {
		required = required.With(cid)
	}

	var matching []ecs.Entity
	for e := range w.Entities() {
		if w.Signature(e).Contains(required) {
			matching = append(matching, e)
		}
	}

	imgui.Text(fmt.Sprintf("Required Signature: 0x%X", uint64(required)))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entity Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SignatureEntityTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity")
			imgui.TableSetupColumn("Full Signature")
			imgui.TableHeadersRow()

			for _, e := range matching {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", e))

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("0x%X", uint64(w.Signature(e))))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
