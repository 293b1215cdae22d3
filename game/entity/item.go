package entity

import (
	"rock-snake/game/types"
)

type ItemKind int

const (
	Apple ItemKind = iota
	BadApple
	Rock
)

func (k ItemKind) String() string {
	switch k {
	case Apple:
		return "apple"
	case BadApple:
		return "bad apple"
	case Rock:
		return "rock"
	}
	return "unknown"
}

// Placer picks a free cell that is not in excluded.
type Placer interface {
	PlaceRandom(excluded []types.Point) (types.Point, error)
}

// Placeable is anything that sits on one cell and can be moved to a random
// free one.
type Placeable interface {
	Position() types.Point
	Color() types.Color
	Randomize(placer Placer, excluded []types.Point) error
}

// Item is a single-cell board object: an apple, a bad apple or a rock.
type Item struct {
	Kind ItemKind
	Pos  types.Point
}

func NewItem(kind ItemKind) *Item {
	return &Item{Kind: kind}
}

func (it *Item) Position() types.Point {
	return it.Pos
}

func (it *Item) Color() types.Color {
	switch it.Kind {
	case BadApple:
		return types.BadAppleColor
	case Rock:
		return types.RockColor
	default:
		return types.AppleColor
	}
}

// Randomize moves the item to a cell outside excluded. On failure the item
// keeps its previous position.
func (it *Item) Randomize(placer Placer, excluded []types.Point) error {
	pos, err := placer.PlaceRandom(excluded)
	if err != nil {
		return err
	}
	it.Pos = pos
	return nil
}
