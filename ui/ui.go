package ui

import (
	"fmt"

	"rock-snake/game"
	"rock-snake/game/types"
)

// Frontend is a rendering and input backend. The main loop polls it for
// input and asks it to draw once per tick.
type Frontend interface {
	Init() error
	// Poll returns the input events gathered since the last call without
	// blocking.
	Poll() []types.Event
	Draw(g *game.Game)
	Close()
}

// Run drives the session until the frontend delivers a quit event. onTick,
// if set, is called with every update's outcome before drawing.
func Run(g *game.Game, fe Frontend, clock *game.Clock, onTick func(game.TickResult)) {
	fe.Draw(g)
	for {
		clock.Tick()

		if g.HandleEvents(fe.Poll()) {
			return
		}

		result := g.Update()
		if onTick != nil {
			onTick(result)
		}

		fe.Draw(g)
	}
}

// StatusLine is the one-line score summary shown under the board.
func StatusLine(g *game.Game) string {
	stats := g.GetStats()
	return fmt.Sprintf("Score: %d  Best: %d  Length: %d  Deaths: %d",
		stats.Score, stats.HighScore, g.Snake.Length, stats.Deaths)
}
