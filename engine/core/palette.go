package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Shape tells a renderer how to draw a render request
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeStar
)

var (
	ColorBackground = colornames.White
	ColorBackRect   = color.RGBA{200, 200, 200, 255}
	ColorPlayer     = colornames.Lime
	ColorAlien      = colornames.Red
	ColorHealthBar  = colornames.Lime
	ColorWingman    = colornames.Blue
	ColorOutline    = colornames.White
	ColorWingShot   = colornames.Deeppink
	ColorText       = colornames.Black

	// ShotColors cycle once per shot event
	ShotColors = []color.RGBA{colornames.Red, colornames.Lime, colornames.Blue}

	// ParticleColors are picked at random for explosion particles
	ParticleColors = []color.RGBA{colornames.Red, colornames.Orange, colornames.Yellow}
)

// ShotColor returns the colour for the n-th shot event
func ShotColor(n int) color.RGBA {
	if n < 0 {
		n = -n
	}
	return ShotColors[n%len(ShotColors)]
}
