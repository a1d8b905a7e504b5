package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/match"
)

var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// Renderer draws match snapshots with vector primitives
type Renderer struct {
	ScreenW, ScreenH int
	ShowHealthBars   bool
	divider          color.RGBA
}

// NewRenderer creates a renderer for a screen of the given size
func NewRenderer(screenW, screenH int) *Renderer {
	return &Renderer{
		ScreenW:        screenW,
		ScreenH:        screenH,
		ShowHealthBars: true,
		divider:        color.RGBA{0, 0, 0, 255},
	}
}

// Draw renders the background and every field of s
func (r *Renderer) Draw(screen *ebiten.Image, s *match.Snapshot) {
	screen.Fill(core.ColorBackground)
	for _, b := range s.Background {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), core.ColorBackRect, false)
	}

	for _, f := range s.Fields {
		for i := range f.Sprites {
			r.drawSprite(screen, &f.Sprites[i])
		}
	}

	if len(s.Fields) > 1 {
		x := float32(s.Fields[1].Lane.X)
		vector.StrokeLine(screen, x, 0, x, float32(s.Height), 2, r.divider, false)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, sp *match.Sprite) {
	switch sp.Shape {
	case core.ShapeRect:
		vector.DrawFilledRect(screen, float32(sp.X), float32(sp.Y), float32(sp.W), float32(sp.H), sp.Color, false)
		if r.ShowHealthBars && sp.Health >= 0 {
			r.drawHealthBar(screen, sp)
		}
	case core.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), float32(sp.W), Faded(sp.Color, sp.Fade), true)
	case core.ShapeStar:
		DrawStar(screen, sp.X, sp.Y, sp.W, sp.Color, core.ColorOutline)
	}
}

// drawHealthBar draws a bar over the sprite proportional to its health
func (r *Renderer) drawHealthBar(screen *ebiten.Image, sp *match.Sprite) {
	w := float32(sp.W * sp.Health)
	if w <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(sp.X), float32(sp.Y-5), w, 3, core.ColorHealthBar, false)
}

// Faded blends c toward the background as an effect ages
func Faded(c color.RGBA, fade float64) color.RGBA {
	if fade <= 0 {
		return c
	}
	from, _ := colorful.MakeColor(c)
	to, _ := colorful.MakeColor(core.ColorBackground)
	cr, cg, cb := from.BlendRgb(to, math.Min(fade, 1)*0.6).RGB255()
	return color.RGBA{cr, cg, cb, c.A}
}

// DrawStar fills the 10-vertex star polygon and outlines it
func DrawStar(screen *ebiten.Image, cx, cy, radius float64, fill, outline color.RGBA) {
	pts := core.StarPoints(cx, cy, radius)

	var path vector.Path
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(fill.R) / 255
		vs[i].ColorG = float32(fill.G) / 255
		vs[i].ColorB = float32(fill.B) / 255
		vs[i].ColorA = float32(fill.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteImg, op)

	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, outline, true)
	}
}
