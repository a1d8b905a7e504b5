package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/alien-shooter/engine/hud"
	"github.com/1siamBot/alien-shooter/engine/match"
)

var (
	face       = basicfont.Face7x13
	dimOverlay = color.RGBA{0, 0, 0, 200}
)

// HUD draws the score, ability status, upgrade overlay and end banners
type HUD struct {
	ScreenW, ScreenH int
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{ScreenW: sw, ScreenH: sh}
}

// Draw renders the HUD for s on top of the playfield
func (h *HUD) Draw(screen *ebiten.Image, s *match.Snapshot) {
	DrawScreen(screen, hud.Build(s), h.ScreenW, h.ScreenH)
}

// DrawScreen renders a laid-out hud screen
func DrawScreen(screen *ebiten.Image, hs hud.Screen, w, h int) {
	if hs.Dim {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), dimOverlay, false)
	}
	for _, l := range hs.Labels {
		DrawLabel(screen, l)
	}
}

func scaleOf(s hud.Size) float64 {
	switch s {
	case hud.SizeSmall:
		return 1
	case hud.SizeLarge:
		return 2
	}
	return 1.5
}

// DrawLabel draws one label with the bitmap face scaled to its size
func DrawLabel(screen *ebiten.Image, l hud.Label) {
	scale := scaleOf(l.Size)
	width := float64(font.MeasureString(face, l.Text).Ceil()) * scale
	height := float64(face.Metrics().Height.Ceil()) * scale

	x, y := l.X, l.Y
	switch l.Align {
	case hud.AlignCenter:
		x -= width / 2
		y -= height / 2
	case hud.AlignRight:
		x -= width
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+float64(face.Metrics().Ascent.Ceil())*scale)
	op.ColorScale.ScaleWithColor(l.Color)
	op.Filter = ebiten.FilterLinear
	text.DrawWithOptions(screen, l.Text, face, op)
}
