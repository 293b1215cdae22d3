package manager

import (
	"rock-snake/game/entity"
	"rock-snake/game/types"
)

// CollisionKind tells what the snake's head ran into during a tick.
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	SelfCollision
	RockCollision
)

func (k CollisionKind) String() string {
	switch k {
	case SelfCollision:
		return "self"
	case RockCollision:
		return "rock"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckFatal checks whether the snake's head hit its own body or a rock.
// Self collision wins when both apply.
func (cm *CollisionManager) CheckFatal(snake *entity.Snake, rocks []*entity.Item) CollisionKind {
	if snake.BitesItself() {
		return SelfCollision
	}
	if cm.IsObstacleCollision(snake.GetHead(), rocks) {
		return RockCollision
	}
	return NoCollision
}

// IsObstacleCollision checks if a position is covered by any rock
func (cm *CollisionManager) IsObstacleCollision(pos types.Point, rocks []*entity.Item) bool {
	for _, rock := range rocks {
		if rock != nil && rock.Pos == pos {
			return true
		}
	}
	return false
}

// IsItemCollision checks if a position is on the item. A nil item (disabled
// in the current variant) never collides.
func (cm *CollisionManager) IsItemCollision(pos types.Point, item *entity.Item) bool {
	return item != nil && item.Pos == pos
}

// ValidateSpawnPosition checks if a position is on the board and outside
// the excluded set.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, excluded []types.Point) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	for _, p := range excluded {
		if p == pos {
			return false
		}
	}
	return true
}
