package manager

import (
	"rock-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds the random draws before PlaceRandom falls back
// to enumerating the free cells.
const MaxPlacementAttempts = 256

// ErrNoFreeCell is returned when every cell of the board is excluded.
var ErrNoFreeCell = errors.New("no free cell left on the board")

type PlacementManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	maxAttempts  int
	fallbacks    int
}

func NewPlacementManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *PlacementManager {
	return &PlacementManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  MaxPlacementAttempts,
	}
}

// PlaceRandom draws a uniformly random cell that is not in excluded.
func (pm *PlacementManager) PlaceRandom(excluded []types.Point) (types.Point, error) {
	for i := 0; i < pm.maxAttempts; i++ {
		pos := pm.grid.CellAt(pm.rng.Intn(pm.grid.Cols()), pm.rng.Intn(pm.grid.Rows()))
		if pm.collisionMgr.ValidateSpawnPosition(pos, excluded) {
			return pos, nil
		}
	}

	pm.fallbacks++
	free := pm.FreeCells(excluded)
	if len(free) == 0 {
		return types.Point{}, errors.Wrapf(ErrNoFreeCell, "%d cells excluded", len(excluded))
	}
	return free[pm.rng.Intn(len(free))], nil
}

// FreeCells lists every cell not in excluded, row by row.
func (pm *PlacementManager) FreeCells(excluded []types.Point) []types.Point {
	taken := make(map[types.Point]struct{}, len(excluded))
	for _, p := range excluded {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, pm.grid.Cells())
	for row := 0; row < pm.grid.Rows(); row++ {
		for col := 0; col < pm.grid.Cols(); col++ {
			pos := pm.grid.CellAt(col, row)
			if _, ok := taken[pos]; !ok {
				free = append(free, pos)
			}
		}
	}
	return free
}

// Fallbacks returns how many placements needed the exhaustive scan.
func (pm *PlacementManager) Fallbacks() int {
	return pm.fallbacks
}
