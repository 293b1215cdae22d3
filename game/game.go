package game

import (
	"io"
	"log/slog"
	"time"

	"rock-snake/game/entity"
	"rock-snake/game/manager"
	"rock-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// TickResult reports what happened during one Update.
type TickResult struct {
	AteApple    bool
	AteBadApple bool
	Collision   manager.CollisionKind
}

// Died reports whether the snake was reset this tick.
func (r TickResult) Died() bool {
	return r.Collision != manager.NoCollision
}

// Game is one play session. It owns the board, every entity on it and the
// RNG, and is driven one tick at a time by the main loop.
type Game struct {
	UUID      string
	Config    Config
	Grid      types.Grid
	Snake     *entity.Snake
	Apple     *entity.Item
	BadApple  *entity.Item // nil in the classic variant
	Rocks     []*entity.Item
	StartTime time.Time

	collisionMgr *manager.CollisionManager
	placementMgr *manager.PlacementManager
	stateMgr     *manager.StateManager
	logger       *slog.Logger
}

// NewGame builds a session from cfg and places every item on the board.
func NewGame(cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := types.Grid{
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.CellSize,
	}
	collisionMgr := manager.NewCollisionManager(grid)

	gameUUID := uuid.New().String()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Game{
		UUID:         gameUUID,
		Config:       cfg,
		Grid:         grid,
		Snake:        entity.NewSnake(grid.Center()),
		StartTime:    time.Now(),
		collisionMgr: collisionMgr,
		placementMgr: manager.NewPlacementManager(grid, rand.New(rand.NewSource(seed)), collisionMgr),
		stateMgr:     manager.NewStateManager(),
		logger:       logger.With("session", gameUUID),
	}

	// Rocks first, then the apples, each excluding whatever is already down
	for i := 0; i < cfg.RockCount(); i++ {
		rock := entity.NewItem(entity.Rock)
		if err := rock.Randomize(g.placementMgr, g.occupied(nil)); err != nil {
			return nil, errors.Wrap(err, "placing rock")
		}
		g.Rocks = append(g.Rocks, rock)
	}

	apple := entity.NewItem(entity.Apple)
	if err := apple.Randomize(g.placementMgr, g.occupied(nil)); err != nil {
		return nil, errors.Wrap(err, "placing apple")
	}
	g.Apple = apple

	if cfg.HasBadApple() {
		badApple := entity.NewItem(entity.BadApple)
		if err := badApple.Randomize(g.placementMgr, g.occupied(nil)); err != nil {
			return nil, errors.Wrap(err, "placing bad apple")
		}
		g.BadApple = badApple
	}

	g.logger.Info("session started",
		"variant", string(cfg.Variant),
		"board", grid.Cols()*grid.Rows(),
		"rocks", len(g.Rocks),
		"seed", seed)
	return g, nil
}

// HandleEvents feeds input events to the snake. It returns true as soon as
// a quit event is seen; events after it are dropped.
func (g *Game) HandleEvents(events []types.Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case types.QuitEvent:
			return true
		case types.DirectionEvent:
			g.Snake.BufferDirection(ev.Dir)
		}
	}
	return false
}

// Update advances the session by one tick. The order of the collision
// checks is fixed: bad apple, then self/rock, then apple.
func (g *Game) Update() TickResult {
	var result TickResult
	g.stateMgr.Tick()

	g.Snake.ApplyBufferedDirection()
	g.Snake.Move(g.Grid)
	head := g.Snake.GetHead()

	if g.collisionMgr.IsItemCollision(head, g.BadApple) {
		result.AteBadApple = true
		g.Snake.Shrink()
		g.stateMgr.BadAppleEaten()
		// The body has not been trimmed yet, so the cell the shrink frees
		// up is still excluded here.
		g.relocate(g.BadApple)
		g.logger.Debug("bad apple eaten", "length", g.Snake.Length)
	}

	if kind := g.collisionMgr.CheckFatal(g.Snake, g.Rocks); kind != manager.NoCollision {
		result.Collision = kind
		g.logger.Info("snake died",
			"cause", kind.String(),
			"length", g.Snake.Length,
			"score", g.stateMgr.GetScore())
		g.Snake.Reset()
		g.stateMgr.Died()
		for _, rock := range g.Rocks {
			g.relocate(rock)
		}
		head = g.Snake.GetHead()
	}

	if g.collisionMgr.IsItemCollision(head, g.Apple) {
		result.AteApple = true
		g.Snake.Grow()
		g.stateMgr.AppleEaten()
		for _, rock := range g.Rocks {
			g.relocate(rock)
		}
		g.relocate(g.Apple)
		g.logger.Debug("apple eaten", "length", g.Snake.Length)
	}

	return result
}

// relocate moves item to a free cell. If the board is full the item stays
// where it is.
func (g *Game) relocate(item *entity.Item) {
	if err := item.Randomize(g.placementMgr, g.occupied(item)); err != nil {
		g.logger.Warn("could not relocate item",
			"item", item.Kind.String(),
			"error", err)
	}
}

// occupied lists every cell taken by the snake or by an item other than
// except.
func (g *Game) occupied(except *entity.Item) []types.Point {
	cells := make([]types.Point, 0, len(g.Snake.Body)+len(g.Rocks)+2)
	cells = append(cells, g.Snake.Body...)
	for _, item := range g.Items() {
		if item != except {
			cells = append(cells, item.Pos)
		}
	}
	return cells
}

// Items returns every item currently on the board, rocks first.
func (g *Game) Items() []*entity.Item {
	items := make([]*entity.Item, 0, len(g.Rocks)+2)
	items = append(items, g.Rocks...)
	if g.Apple != nil {
		items = append(items, g.Apple)
	}
	if g.BadApple != nil {
		items = append(items, g.BadApple)
	}
	return items
}

func (g *Game) GetSnake() *entity.Snake {
	return g.Snake
}

func (g *Game) GetStats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// ElapsedTime returns how long the session has been running.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}

// PlacementFallbacks returns how many item placements needed the exhaustive
// free-cell scan.
func (g *Game) PlacementFallbacks() int {
	return g.placementMgr.Fallbacks()
}
