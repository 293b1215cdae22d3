package types

type Color struct {
	R, G, B uint8
}

// Board palette
var (
	BackgroundColor = Color{R: 144, G: 238, B: 144}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	BadAppleColor   = Color{R: 255, G: 165, B: 0}
	SnakeColor      = Color{R: 164, G: 164, B: 0}
	SnakeHeadColor  = Color{R: 184, G: 134, B: 11}
	RockColor       = Color{R: 64, G: 64, B: 64}
)
