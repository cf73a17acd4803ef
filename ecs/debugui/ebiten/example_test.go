package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/corepulse/corepulse/ecs"
	"github.com/corepulse/corepulse/ecs/debugui"
	debugui_ebiten "github.com/corepulse/corepulse/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and renders the debug overlay on top of the
// world.
type Game struct {
	world   *ecs.World
	overlay *debugui.Overlay
	backend debugui_ebiten.ImguiBackend
	timer   *debugui.FrameTimer
}

func (g *Game) Update() error {
	dt := g.timer.GetDeltaTime()

	g.backend.BeginFrame()
	g.world.Update(float64(dt))
	g.overlay.Render(g.world, dt)
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("World Debug Overlay", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	world := ecs.NewWorld()

	game := &Game{
		world:   world,
		overlay: debugui.NewOverlay(),
		backend: debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
		timer:   debugui.NewFrameTimer(),
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
