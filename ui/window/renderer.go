package window

import (
	"rock-snake/game"
	"rock-snake/game/types"
	"rock-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const (
	hudHeight = 24 // Strip under the board for the score line
	fontSize  = 16
	title     = "Snake"
)

// Renderer draws the board in a raylib window and reads the keyboard.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	cellSize     int32
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		screenWidth:  int32(grid.Width),
		screenHeight: int32(grid.Height),
		cellSize:     int32(grid.CellSize),
	}
}

func (r *Renderer) Init() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight+hudHeight, title)
	if !rl.IsWindowReady() {
		return errors.New("raylib window could not be opened")
	}
	return nil
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

// Poll drains raylib's key queue. Closing the window, Escape or Q quits.
func (r *Renderer) Poll() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		return append(events, types.Quit())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := keyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key int32) (types.Event, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.Pressed(types.Up), true
	case rl.KeyDown, rl.KeyS:
		return types.Pressed(types.Down), true
	case rl.KeyLeft, rl.KeyA:
		return types.Pressed(types.Left), true
	case rl.KeyRight, rl.KeyD:
		return types.Pressed(types.Right), true
	case rl.KeyQ, rl.KeyEscape:
		return types.Quit(), true
	}
	return types.Event{}, false
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(color(types.BackgroundColor))

	for _, item := range g.Items() {
		r.drawCell(item.Position(), item.Color())
	}

	// Body first so the head is painted over it
	snake := g.GetSnake()
	for _, p := range snake.Body {
		r.drawCell(p, snake.Color)
	}
	r.drawCell(snake.GetHead(), snake.HeadColor)

	rl.DrawRectangle(0, r.screenHeight, r.screenWidth, hudHeight, rl.DarkGray)
	rl.DrawText(ui.StatusLine(g), 6, r.screenHeight+(hudHeight-fontSize)/2, fontSize, rl.White)

	rl.EndDrawing()
}

// drawCell fills one cell and outlines it with the border color
func (r *Renderer) drawCell(p types.Point, c types.Color) {
	x, y := int32(p.X), int32(p.Y)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color(c))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, color(types.BorderColor))
}

func color(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
