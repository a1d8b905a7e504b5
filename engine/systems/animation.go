package systems

import (
	"math/rand"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// ExplosionSystem advances explosion particles and retires finished bursts.
// It runs as an effect, so bursts keep animating while gameplay is paused.
type ExplosionSystem struct{}

func (s *ExplosionSystem) Priority() int { return 90 }

func (s *ExplosionSystem) Update(f *core.Field, _ int64) {
	f.Explosions.Each(func(i int, e *core.Explosion) {
		if e.Update() {
			f.Explosions.Destroy(i)
		}
	})
}

// Background is the field of grey strips drifting up behind the action
type Background struct {
	Area  core.Rect
	Rects *core.Pool[core.Rect]
	cfg   *core.Config
	seed  int64
	rng   core.Rand
}

// NewBackground creates a background covering area. The strip layout is
// drawn from its own source seeded once from rng, so every Reset repeats it.
func NewBackground(area core.Rect, cfg *core.Config, rng core.Rand) *Background {
	b := &Background{
		Area:  area,
		Rects: core.NewPool[core.Rect](),
		cfg:   cfg,
		seed:  int64(rng.Intn(1 << 30)),
	}
	b.Reset()
	return b
}

// Reset fills the whole area with a jittered grid of strips
func (b *Background) Reset() {
	b.rng = rand.New(rand.NewSource(b.seed))
	b.Rects.Clear()
	cfg := b.cfg
	j := cfg.BackgroundJitter
	for y := -cfg.BackgroundRectHeight; y < b.Area.H+cfg.BackgroundSpacing; y += cfg.BackgroundSpacing {
		for x := 0.0; x < b.Area.W; x += cfg.BackgroundSpacing {
			b.Rects.Spawn(core.Rect{
				X: b.Area.X + x + float64(core.RandRange(b.rng, -j, j)),
				Y: b.Area.Y + y + float64(core.RandRange(b.rng, -j, j)),
				W: cfg.BackgroundRectWidth,
				H: cfg.BackgroundRectHeight,
			})
		}
	}
}

// Update scrolls every strip and tops the pool up with a fresh row below
// the bottom edge
func (b *Background) Update() {
	top := b.Area.Y
	b.Rects.Each(func(i int, r *core.Rect) {
		r.Y -= b.cfg.BackgroundSpeed
		if r.Bottom() < top {
			b.Rects.Destroy(i)
		}
	})
	b.Rects.Compact()

	if b.Rects.Count() >= b.cfg.BackgroundMaxRects {
		return
	}
	cfg := b.cfg
	for x := 0.0; x < b.Area.W; x += cfg.BackgroundSpacing {
		b.Rects.Spawn(core.Rect{
			X: b.Area.X + x + float64(core.RandRange(b.rng, -cfg.BackgroundJitter, cfg.BackgroundJitter)),
			Y: b.Area.Bottom() + float64(core.RandRange(b.rng, 0, int(cfg.BackgroundSpacing))),
			W: cfg.BackgroundRectWidth,
			H: cfg.BackgroundRectHeight,
		})
	}
}
