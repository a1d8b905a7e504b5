package systems

import (
	"github.com/1siamBot/alien-shooter/engine/core"
)

// PlayerSystem applies the frame's intent to the player ship
type PlayerSystem struct{}

func (s *PlayerSystem) Priority() int { return 10 }

func (s *PlayerSystem) Update(f *core.Field, _ int64) {
	f.Player.Move(f.Intent, f.Lane)
}

// AlienSystem moves aliens down the lane. An alien past the bottom edge
// loses the match for the field.
type AlienSystem struct{}

func (s *AlienSystem) Priority() int { return 50 }

func (s *AlienSystem) Update(f *core.Field, _ int64) {
	bottom := f.Lane.Bottom()
	f.Aliens.Each(func(i int, a *core.Alien) {
		if f.Lost {
			return
		}
		a.Move(f.Lane, f.Rng)
		if a.Y > bottom {
			f.Aliens.Destroy(i)
			f.Lost = true
			f.Emit(core.EvtPlayerLost, "alien reached the bottom")
		}
	})
}

// WingmanSystem moves wingmen along the bottom of the lane
type WingmanSystem struct{}

func (s *WingmanSystem) Priority() int { return 55 }

func (s *WingmanSystem) Update(f *core.Field, _ int64) {
	f.Wingmen.Each(func(_ int, w *core.Wingman) {
		w.Move(f.Lane, f.Rng)
	})
}
