package game

import (
	"testing"

	"rock-snake/game/entity"
	"rock-snake/game/manager"
	"rock-snake/game/types"

	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, variant Variant) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Variant = variant
	cfg.Seed = 99
	g, err := NewGame(cfg, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// parkItems moves every item onto row 0, away from the snake's start row.
func parkItems(g *Game) {
	for i, item := range g.Items() {
		item.Pos = g.Grid.CellAt(i, 0)
	}
}

func assertDistinctItems(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[types.Point]entity.ItemKind)
	for _, item := range g.Items() {
		if !g.Grid.Contains(item.Pos) {
			t.Fatalf("%v is off the board at %v", item.Kind, item.Pos)
		}
		if other, ok := seen[item.Pos]; ok {
			t.Fatalf("%v and %v share cell %v", item.Kind, other, item.Pos)
		}
		seen[item.Pos] = item.Kind
	}
}

func TestNewGameExtended(t *testing.T) {
	g := newTestGame(t, Extended)

	if len(g.Rocks) != 2 {
		t.Errorf("Expected 2 rocks, got %d", len(g.Rocks))
	}
	if g.BadApple == nil {
		t.Fatal("Expected a bad apple in the extended variant")
	}
	if g.Snake.GetHead() != (types.Point{X: 320, Y: 240}) {
		t.Errorf("Expected snake at board center, got %v", g.Snake.GetHead())
	}
	for _, item := range g.Items() {
		if g.Snake.Occupies(item.Pos) {
			t.Errorf("%v placed on the snake", item.Kind)
		}
	}
	assertDistinctItems(t, g)
	if g.UUID == "" {
		t.Error("Expected a session id")
	}
}

func TestNewGameClassic(t *testing.T) {
	g := newTestGame(t, Classic)
	if g.BadApple != nil || len(g.Rocks) != 0 {
		t.Errorf("Expected only an apple, got bad apple %v and %d rocks", g.BadApple, len(g.Rocks))
	}
	if len(g.Items()) != 1 {
		t.Errorf("Expected one item, got %d", len(g.Items()))
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 0
	if _, err := NewGame(cfg, nil); err == nil {
		t.Error("Expected an error for zero cell size")
	}
}

func TestFullWrapAroundCycle(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	start := g.Snake.GetHead()

	for i := 0; i < 32; i++ {
		if r := g.Update(); r != (TickResult{}) {
			t.Fatalf("Tick %d: unexpected event %+v", i, r)
		}
	}
	if g.Snake.GetHead() != start {
		t.Errorf("Expected head back at %v after 32 ticks, got %v", start, g.Snake.GetHead())
	}
}

func TestEatingAppleGrowsAndRelocates(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	rocksBefore := []types.Point{g.Rocks[0].Pos, g.Rocks[1].Pos}
	g.Apple.Pos = types.Point{X: 340, Y: 240}

	result := g.Update()
	if !result.AteApple {
		t.Fatal("Expected the apple to be eaten")
	}
	if g.Snake.Length != 2 {
		t.Errorf("Expected length 2, got %d", g.Snake.Length)
	}
	if g.Snake.Occupies(g.Apple.Pos) {
		t.Errorf("Apple respawned on the snake at %v", g.Apple.Pos)
	}
	for _, rock := range g.Rocks {
		if g.Snake.Occupies(rock.Pos) {
			t.Errorf("Rock respawned on the snake at %v", rock.Pos)
		}
	}
	if g.Rocks[0].Pos == rocksBefore[0] && g.Rocks[1].Pos == rocksBefore[1] {
		t.Error("Expected rocks to move when the apple is eaten")
	}
	assertDistinctItems(t, g)
	if g.GetStats().Score != 1 {
		t.Errorf("Expected score 1, got %d", g.GetStats().Score)
	}

	// Growth shows up on the next move
	parkItems(g)
	g.Update()
	if len(g.Snake.Body) != 2 {
		t.Errorf("Expected 2 segments, got %d", len(g.Snake.Body))
	}
}

func TestEatingBadAppleShrinks(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	g.Snake.Body = []types.Point{{X: 320, Y: 240}, {X: 300, Y: 240}, {X: 280, Y: 240}}
	g.Snake.Length = 3
	g.BadApple.Pos = types.Point{X: 340, Y: 240}

	result := g.Update()
	if !result.AteBadApple {
		t.Fatal("Expected the bad apple to be eaten")
	}
	if g.Snake.Length != 2 {
		t.Errorf("Expected length 2, got %d", g.Snake.Length)
	}
	// The body is trimmed on the next move, so all three segments,
	// including the soon to be freed tail, were excluded
	if len(g.Snake.Body) != 3 {
		t.Fatalf("Expected 3 segments until the next move, got %d", len(g.Snake.Body))
	}
	if g.Snake.Occupies(g.BadApple.Pos) {
		t.Errorf("Bad apple respawned on the snake at %v", g.BadApple.Pos)
	}
	assertDistinctItems(t, g)

	parkItems(g)
	g.Update()
	if len(g.Snake.Body) != 2 {
		t.Errorf("Expected body to converge to 2 segments, got %d", len(g.Snake.Body))
	}
}

func TestBadAppleOnSingleSegmentKeepsLength(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	g.BadApple.Pos = types.Point{X: 340, Y: 240}

	g.Update()
	if g.Snake.Length != 1 {
		t.Errorf("Expected length to stay 1, got %d", g.Snake.Length)
	}
}

func TestRockCollisionResetsSnake(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	g.Snake.Body = []types.Point{{X: 360, Y: 240}, {X: 340, Y: 240}}
	g.Snake.Length = 2
	g.Rocks[0].Pos = types.Point{X: 380, Y: 240}

	result := g.Update()
	if result.Collision != manager.RockCollision {
		t.Fatalf("Expected rock collision, got %v", result.Collision)
	}
	if g.Snake.Length != 1 || g.Snake.GetHead() != g.Snake.Start() {
		t.Errorf("Expected reset snake at %v, got %v (length %d)", g.Snake.Start(), g.Snake.Body, g.Snake.Length)
	}
	for _, rock := range g.Rocks {
		if g.Snake.Occupies(rock.Pos) {
			t.Errorf("Rock respawned on the reset snake at %v", rock.Pos)
		}
	}
	assertDistinctItems(t, g)
	if g.GetStats().Deaths != 1 {
		t.Errorf("Expected one death, got %d", g.GetStats().Deaths)
	}
}

func TestSelfCollisionResetsSnake(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	// Head at (100,100) moving right runs into the segment at (120,100)
	g.Snake.Body = []types.Point{
		{X: 100, Y: 100},
		{X: 100, Y: 120},
		{X: 120, Y: 120},
		{X: 120, Y: 100},
		{X: 140, Y: 100},
	}
	g.Snake.Length = 5

	result := g.Update()
	if result.Collision != manager.SelfCollision {
		t.Fatalf("Expected self collision, got %v", result.Collision)
	}
	if g.Snake.Length != 1 || len(g.Snake.Body) != 1 {
		t.Errorf("Expected a single segment, got %d segments (length %d)", len(g.Snake.Body), g.Snake.Length)
	}
	if g.Snake.GetHead() != g.Snake.Start() {
		t.Errorf("Expected head at start %v, got %v", g.Snake.Start(), g.Snake.GetHead())
	}
}

func TestAppleOnRespawnCellIsEatenAfterReset(t *testing.T) {
	g := newTestGame(t, Extended)
	parkItems(g)
	g.Snake.Body = []types.Point{{X: 0, Y: 100}}
	g.Rocks[0].Pos = types.Point{X: 20, Y: 100}
	g.Apple.Pos = g.Snake.Start()

	result := g.Update()
	if !result.Died() || !result.AteApple {
		t.Fatalf("Expected death then apple in the same tick, got %+v", result)
	}
	if g.Snake.Length != 2 {
		t.Errorf("Expected length 2, got %d", g.Snake.Length)
	}
}

func TestHandleEvents(t *testing.T) {
	g := newTestGame(t, Classic)

	quit := g.HandleEvents([]types.Event{
		types.Pressed(types.Up),
		types.Quit(),
		types.Pressed(types.Down),
	})
	if !quit {
		t.Fatal("Expected quit to be reported")
	}
	if d, ok := g.Snake.Pending(); !ok || d != types.Up {
		t.Errorf("Expected up to be buffered and later events dropped, got %v %v", d, ok)
	}

	if g.HandleEvents([]types.Event{types.Pressed(types.Left)}) {
		t.Error("Expected no quit")
	}
	if d, _ := g.Snake.Pending(); d != types.Up {
		t.Errorf("Expected reversal to be ignored, got %v", d)
	}
}

func TestLongRunStaysConsistent(t *testing.T) {
	g := newTestGame(t, Extended)
	rng := rand.New(rand.NewSource(5))
	dirs := []types.Direction{types.Up, types.Down, types.Left, types.Right}

	for i := 0; i < 5000; i++ {
		if rng.Intn(3) == 0 {
			g.HandleEvents([]types.Event{types.Pressed(dirs[rng.Intn(len(dirs))])})
		}
		g.Update()

		if !g.Grid.Contains(g.Snake.GetHead()) {
			t.Fatalf("Tick %d: head off the board at %v", i, g.Snake.GetHead())
		}
		if g.Snake.Length < 1 || len(g.Snake.Body) > g.Snake.Length+1 {
			t.Fatalf("Tick %d: %d segments for length %d", i, len(g.Snake.Body), g.Snake.Length)
		}
		assertDistinctItems(t, g)
	}
	if g.GetStats().Ticks != 5000 {
		t.Errorf("Expected 5000 ticks, got %d", g.GetStats().Ticks)
	}
}
