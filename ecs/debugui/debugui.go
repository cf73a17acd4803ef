// Package debugui provides immediate-mode inspection windows for a World
// using Dear ImGui: an entity browser, a per-entity component inspector, a
// system viewer with timing counters, a signature debugger and a
// performance overlay. It reads the world through its introspection
// surface and never registers components or systems of its own.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/corepulse/corepulse/ecs"
)

// Overlay bundles the standard debug windows. Call Render once per frame
// from inside an active ImGui frame.
type Overlay struct {
	EntityBrowser      *EntityBrowser
	ComponentInspector *ComponentInspector
	SystemViewer       *SystemViewer
	SignatureDebugger  *SignatureDebugger
	PerformanceStats   *PerformanceStats
}

// NewOverlay creates the standard debug window set.
func NewOverlay() *Overlay {
	return &Overlay{
		EntityBrowser:      NewEntityBrowser(100),
		ComponentInspector: NewComponentInspector(),
		SystemViewer:       NewSystemViewer(),
		SignatureDebugger:  NewSignatureDebugger(),
		PerformanceStats:   NewPerformanceStats(120),
	}
}

// Render draws every window. deltaTime is the host frame time in seconds.
func (o *Overlay) Render(w *ecs.World, deltaTime float32) {
	o.EntityBrowser.Render(w)
	o.ComponentInspector.Render(w, o.EntityBrowser.SelectedEntity())
	o.SystemViewer.Render(w)
	o.SignatureDebugger.Render(w)
	o.PerformanceStats.Render(w, deltaTime)
}

// InputCaptured reports whether ImGui currently wants the mouse or
// keyboard; hosts should skip game input handling while it does.
func InputCaptured() bool {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse() || io.WantCaptureKeyboard()
}
