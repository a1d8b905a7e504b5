package termview

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/hud"
	"github.com/1siamBot/alien-shooter/engine/match"
)

const (
	glyphParticle = '•'
	glyphWingman  = '*'
	glyphHealth   = '▄'
	glyphDivider  = '│'
)

var black = color.RGBA{0, 0, 0, 255}

// View draws snapshots onto a tcell screen
type View struct {
	Screen tcell.Screen
	vp     *Viewport
	dim    bool
}

// New creates a view over an initialised screen
func New(screen tcell.Screen, worldW, worldH float64) *View {
	cols, rows := screen.Size()
	return &View{Screen: screen, vp: NewViewport(worldW, worldH, cols, rows)}
}

// Viewport exposes the current world to cell mapping
func (v *View) Viewport() *Viewport {
	return v.vp
}

func (v *View) sync(worldW, worldH float64) {
	cols, rows := v.Screen.Size()
	v.vp.WorldW, v.vp.WorldH = worldW, worldH
	v.vp.Resize(cols, rows)
}

// Draw renders a full frame and shows it
func (v *View) Draw(s *match.Snapshot) {
	v.sync(s.Width, s.Height)
	v.dim = s.State == core.StateUpgradeSelection

	v.clear(core.ColorBackground)
	for _, r := range s.Background {
		v.fillRect(r, core.ColorBackRect)
	}
	for _, f := range s.Fields {
		for i := range f.Sprites {
			v.drawSprite(&f.Sprites[i])
		}
	}
	if len(s.Fields) > 1 {
		col, _ := v.vp.WorldToCell(s.Fields[1].Lane.X, 0)
		for row := 0; row < v.vp.Rows; row++ {
			v.setGlyph(col, row, glyphDivider, core.ColorText)
		}
	}

	v.dim = false
	for _, l := range hud.Build(s).Labels {
		v.drawLabel(l)
	}
	v.Screen.Show()
}

// DrawMenu renders the start menu for a world of w by h
func (v *View) DrawMenu(w, h float64) {
	v.sync(w, h)
	v.dim = false
	v.clear(core.ColorBackground)
	for _, l := range hud.Menu(w, h).Labels {
		v.drawLabel(l)
	}
	v.Screen.Show()
}

func (v *View) drawSprite(sp *match.Sprite) {
	switch sp.Shape {
	case core.ShapeRect:
		r := core.Rect{X: sp.X, Y: sp.Y, W: sp.W, H: sp.H}
		v.fillRect(r, sp.Color)
		if sp.Health >= 0 {
			v.drawHealthBar(r, sp.Health)
		}
	case core.ShapeCircle:
		col, row := v.vp.WorldToCell(sp.X, sp.Y)
		v.setGlyph(col, row, glyphParticle, Blend(sp.Color, core.ColorBackground, sp.Fade*0.6))
	case core.ShapeStar:
		col, row := v.vp.WorldToCell(sp.X, sp.Y)
		v.setGlyph(col, row, glyphWingman, sp.Color)
	}
}

// drawHealthBar uses the row above the sprite, scaled to its health
func (v *View) drawHealthBar(r core.Rect, health float64) {
	c0, r0, c1, _ := v.vp.RectCells(r)
	width := int(float64(c1-c0)*health + 0.5)
	if health > 0 {
		width = max(width, 1)
	}
	for col := c0; col < c0+width; col++ {
		v.setGlyph(col, r0-1, glyphHealth, core.ColorHealthBar)
	}
}

func (v *View) clear(bg color.RGBA) {
	style := tcell.StyleDefault.Background(v.tint(bg)).Foreground(v.tint(core.ColorText))
	for row := 0; row < v.vp.Rows; row++ {
		for col := 0; col < v.vp.Cols; col++ {
			v.Screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (v *View) fillRect(r core.Rect, clr color.RGBA) {
	c0, r0, c1, r1 := v.vp.RectCells(r)
	style := tcell.StyleDefault.Background(v.tint(clr))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if v.vp.Visible(col, row) {
				v.Screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

// setGlyph draws a foreground rune and keeps the cell's background
func (v *View) setGlyph(col, row int, r rune, fg color.RGBA) {
	if !v.vp.Visible(col, row) {
		return
	}
	_, _, old, _ := v.Screen.GetContent(col, row)
	_, bg, _ := old.Decompose()
	v.Screen.SetContent(col, row, r, nil, tcell.StyleDefault.Background(bg).Foreground(v.tint(fg)))
}

func (v *View) drawLabel(l hud.Label) {
	runes := []rune(l.Text)
	col, row := v.vp.WorldToCell(l.X, l.Y)
	switch l.Align {
	case hud.AlignCenter:
		col -= len(runes) / 2
	case hud.AlignRight:
		col -= len(runes)
	}
	for i, r := range runes {
		v.setGlyph(col+i, row, r, l.Color)
	}
}

// tint converts a colour, darkening it while the playfield is dimmed
func (v *View) tint(c color.RGBA) tcell.Color {
	if v.dim {
		c = Blend(c, black, 0.78)
	}
	return RGB(c)
}

// RGB converts an RGBA colour to a true-colour tcell colour
func RGB(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend mixes a toward b by t in RGB space
func Blend(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendRgb(cb, min(t, 1)).RGB255()
	return color.RGBA{r, g, bl, 255}
}
