package terminal

import (
	"rock-snake/game"
	"rock-snake/game/types"
	"rock-snake/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Each board cell is two columns wide so cells look roughly square.
const cellColumns = 2

// Terminal draws the board with tcell and reads keys from the same screen.
// A goroutine blocks on PollEvent and hands events over through a buffered
// channel; the game loop only ever drains it.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
}

// New creates a terminal frontend. A nil screen opens the real terminal.
func New(screen tcell.Screen, grid types.Grid) *Terminal {
	return &Terminal{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, 100),
	}
}

func (t *Terminal) Init() error {
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "creating terminal screen")
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal screen")
	}
	t.screen.HideCursor()

	go t.readEvents()
	return nil
}

// readEvents exits when PollEvent returns nil, which happens after Fini
func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		default:
			// Loop is behind; a dropped key press is harmless
		}
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Poll returns the events queued since the last call.
func (t *Terminal) Poll() []types.Event {
	var events []types.Event
	for {
		select {
		case ev := <-t.events:
			if out, ok := t.translate(ev); ok {
				events = append(events, out)
			}
		default:
			return events
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (types.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyEvent(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return types.Event{}, false
}

func keyEvent(ev *tcell.EventKey) (types.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Pressed(types.Up), true
	case tcell.KeyDown:
		return types.Pressed(types.Down), true
	case tcell.KeyLeft:
		return types.Pressed(types.Left), true
	case tcell.KeyRight:
		return types.Pressed(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.Quit(), true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
			return types.Quit(), true
		}
		switch ev.Rune() {
		case 'w', 'k':
			return types.Pressed(types.Up), true
		case 's', 'j':
			return types.Pressed(types.Down), true
		case 'a', 'h':
			return types.Pressed(types.Left), true
		case 'd', 'l':
			return types.Pressed(types.Right), true
		case 'q':
			return types.Quit(), true
		}
	}
	return types.Event{}, false
}

func (t *Terminal) Draw(g *game.Game) {
	background := style(types.BackgroundColor)
	for row := 0; row < t.grid.Rows(); row++ {
		for col := 0; col < t.grid.Cols(); col++ {
			t.drawCell(t.grid.CellAt(col, row), ' ', ' ', background)
		}
	}

	for _, item := range g.Items() {
		t.drawOccupied(item.Position(), item.Color())
	}

	snake := g.GetSnake()
	for _, p := range snake.Body {
		t.drawOccupied(p, snake.Color)
	}
	t.drawOccupied(snake.GetHead(), snake.HeadColor)

	t.drawStatus(ui.StatusLine(g))
	t.screen.Show()
}

// drawOccupied paints a cell with the border color for the brackets, the
// terminal's closest match to an outlined rectangle
func (t *Terminal) drawOccupied(p types.Point, c types.Color) {
	st := style(c).Foreground(rgb(types.BorderColor))
	t.drawCell(p, '[', ']', st)
}

func (t *Terminal) drawCell(p types.Point, left, right rune, st tcell.Style) {
	x := p.X / t.grid.CellSize * cellColumns
	y := p.Y / t.grid.CellSize
	t.screen.SetContent(x, y, left, nil, st)
	t.screen.SetContent(x+1, y, right, nil, st)
}

func (t *Terminal) drawStatus(line string) {
	y := t.grid.Rows()
	width := t.grid.Cols() * cellColumns
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(line)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, y, r, nil, st)
	}
}

func rgb(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(rgb(c))
}
