package match

import (
	"image/color"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// Sprite is one draw request
type Sprite struct {
	Shape  core.Shape
	X, Y   float64 // top-left, or centre for circles and stars
	W, H   float64 // radius in W for circles and stars
	Color  color.RGBA
	Health float64 // health bar fraction, negative when there is no bar
	Fade   float64 // 0 fresh .. 1 about to vanish
}

// FieldView is what a renderer needs to draw one field
type FieldView struct {
	Lane           core.Rect
	Score          int
	Lost           bool
	ClearScreen    bool
	ClearRemaining int64 // ms
	Wingmen        int
	Sprites        []Sprite
}

// UpgradeOption is one entry of an upgrade offer
type UpgradeOption struct {
	Kind        core.UpgradeKind
	Name        string
	Description string
}

// Snapshot is a read-only copy of everything visible this frame
type Snapshot struct {
	Mode       core.Mode
	State      core.MatchState
	Winner     int
	Target     int
	Width      float64
	Height     float64
	Background []core.Rect
	Fields     []FieldView
	Upgrades   []UpgradeOption
}

// Snapshot copies the visible state of the match
func (m *Match) Snapshot() Snapshot {
	now := m.clock.Millis()
	s := Snapshot{
		Mode:       m.Mode,
		State:      m.state,
		Winner:     m.winner,
		Target:     m.Target(),
		Width:      m.width,
		Height:     m.height,
		Background: m.Background.Rects.Items(),
		Fields:     make([]FieldView, len(m.Fields)),
	}
	for i, f := range m.Fields {
		s.Fields[i] = fieldView(f, now)
	}
	if offer := m.Offer(); offer != nil {
		p := m.Fields[0].Player
		for _, k := range offer {
			s.Upgrades = append(s.Upgrades, UpgradeOption{
				Kind:        k,
				Name:        k.String(),
				Description: k.Describe(p, m.Cfg),
			})
		}
	}
	return s
}

func fieldView(f *core.Field, now int64) FieldView {
	p := f.Player
	v := FieldView{
		Lane:           f.Lane,
		Score:          f.Score,
		Lost:           f.Lost,
		ClearScreen:    p.ClearScreen,
		ClearRemaining: p.ClearRemaining(now),
		Wingmen:        f.Wingmen.Count(),
	}

	v.Sprites = append(v.Sprites, rectSprite(p.Rect, core.ColorPlayer, -1))
	f.Aliens.Each(func(_ int, a *core.Alien) {
		v.Sprites = append(v.Sprites, rectSprite(a.Rect, core.ColorAlien, a.HealthRatio()))
	})
	f.Projectiles.Each(func(_ int, pr *core.Projectile) {
		v.Sprites = append(v.Sprites, rectSprite(pr.Rect, pr.Color, -1))
	})
	f.Wingmen.Each(func(_ int, w *core.Wingman) {
		v.Sprites = append(v.Sprites, Sprite{
			Shape:  core.ShapeStar,
			X:      w.CenterX(),
			Y:      w.CenterY(),
			W:      w.W / 2,
			H:      w.H / 2,
			Color:  core.ColorWingman,
			Health: -1,
		})
	})
	f.Explosions.Each(func(_ int, e *core.Explosion) {
		fade := e.Progress()
		for _, pt := range e.Particles {
			v.Sprites = append(v.Sprites, Sprite{
				Shape:  core.ShapeCircle,
				X:      pt.X,
				Y:      pt.Y,
				W:      pt.Radius,
				H:      pt.Radius,
				Color:  pt.Color,
				Health: -1,
				Fade:   fade,
			})
		}
	})
	return v
}

func rectSprite(r core.Rect, clr color.RGBA, health float64) Sprite {
	return Sprite{Shape: core.ShapeRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: clr, Health: health}
}
