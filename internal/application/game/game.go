// Package game provides the demo host: a minimal ebiten game whose input
// surface the engine records and replays.
package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/FinnBaltazar1111/kitsune/internal/application/engine"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/sequence"
	"github.com/FinnBaltazar1111/kitsune/internal/infrastructure/ebitenhost"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorBox       = color.RGBA{100, 200, 100, 255}
	colorBoxAction = color.RGBA{255, 215, 0, 255}
	colorRecording = color.RGBA{200, 50, 50, 255}
	colorPlaying   = color.RGBA{100, 100, 200, 255}
)

const boxSize = 16

// Game is the demo host. Implements ebiten.Game.
type Game struct {
	inputs  *ebitenhost.InputManager
	ctrl    *engine.Controller
	screenW int
	screenH int

	x, y  float64
	speed float64

	saveFilename string
}

// New creates the demo host around an input manager and the controller that
// drives it.
func New(inputs *ebitenhost.InputManager, ctrl *engine.Controller, screenW, screenH int, saveFilename string) *Game {
	return &Game{
		inputs:       inputs,
		ctrl:         ctrl,
		screenW:      screenW,
		screenH:      screenH,
		x:            float64(screenW-boxSize) / 2,
		y:            float64(screenH-boxSize) / 2,
		speed:        3,
		saveFilename: saveFilename,
	}
}

// Update advances one host frame, then notifies the engine's tick observers.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	// Hotkeys only make sense with a real keyboard attached.
	if g.inputs.ReadKeyboard {
		g.handleHotkeys()
	}

	// The host's own frame work: move the box by the merged input state.
	if g.inputs.SlotPressed(input.SlotLeft) {
		g.x -= g.speed
	}
	if g.inputs.SlotPressed(input.SlotRight) {
		g.x += g.speed
	}
	if g.inputs.SlotPressed(input.SlotUp) {
		g.y -= g.speed
	}
	if g.inputs.SlotPressed(input.SlotDown) {
		g.y += g.speed
	}
	if g.inputs.SlotPressed(input.SlotCancel) {
		g.x = float64(g.screenW-boxSize) / 2
		g.y = float64(g.screenH-boxSize) / 2
	}
	g.clamp()

	// Post-tick observers run last: recorder first, then player.
	g.inputs.Tick()
	return nil
}

func (g *Game) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if g.ctrl.Mode() == engine.ModeRecording {
			seq := g.ctrl.StopRecording()
			log.Printf("Recording stopped (%d frames)", len(seq))
		} else if err := g.ctrl.StartRecording(); err != nil {
			log.Printf("Failed to start recording: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if g.ctrl.Mode() == engine.ModePlaying {
			g.ctrl.StopPlayback()
		} else if err := g.ctrl.StartPlayback(nil); err != nil {
			log.Printf("Failed to start playback: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.saveSequence()
	}
}

func (g *Game) saveSequence() {
	seq := g.ctrl.Sequence()
	filename := g.saveFilename
	if filename == "" {
		filename = sequence.GenerateFilename()
	}
	if err := sequence.SaveFile(filename, seq); err != nil {
		log.Printf("Failed to save sequence: %v", err)
	} else {
		log.Printf("Sequence saved: %s (%d frames)", filename, len(seq))
	}
}

func (g *Game) clamp() {
	if g.x < 0 {
		g.x = 0
	}
	if g.y < 0 {
		g.y = 0
	}
	if max := float64(g.screenW - boxSize); g.x > max {
		g.x = max
	}
	if max := float64(g.screenH - boxSize); g.y > max {
		g.y = max
	}
}

// Draw renders the demo scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	boxColor := colorBox
	if g.inputs.SlotPressed(input.SlotAction) {
		boxColor = colorBoxAction
	}
	ebitenutil.DrawRect(screen, g.x, g.y, boxSize, boxSize, boxColor)

	st := g.ctrl.Status()
	switch st.Mode {
	case engine.ModeRecording:
		ebitenutil.DrawRect(screen, float64(g.screenW-14), 4, 10, 10, colorRecording)
	case engine.ModePlaying:
		ebitenutil.DrawRect(screen, float64(g.screenW-14), 4, 10, 10, colorPlaying)
	}

	statusText := fmt.Sprintf("%s | frames: %d | cursor: %d | strategy: %s",
		st.Mode, st.SequenceLen, st.Cursor, st.Strategy)
	ebitenutil.DebugPrint(screen, statusText)
	ebitenutil.DebugPrintAt(screen,
		"Arrows: Move | Z: Action | X: Reset | F1: Record | F2: Play | F5: Save",
		0, g.screenH-16)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Position returns the box position, for tests.
func (g *Game) Position() (float64, float64) {
	return g.x, g.y
}
