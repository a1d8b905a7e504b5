package systems

import (
	"github.com/1siamBot/alien-shooter/engine/core"
)

// CombatSystem resolves projectile hits, then checks the player against
// the aliens that survived
type CombatSystem struct{}

func (s *CombatSystem) Priority() int { return 60 }

func (s *CombatSystem) Update(f *core.Field, _ int64) {
	ResolveHits(f)
	if PlayerHit(f) {
		f.Lost = true
		f.Emit(core.EvtPlayerLost, "collided with an alien")
	}
}

// ResolveHits consumes every projectile that overlaps a live alien. Each
// projectile hits at most the first alien in creation order.
func ResolveHits(f *core.Field) {
	f.Projectiles.Each(func(pi int, p *core.Projectile) {
		for ai := 0; ai < f.Aliens.Len(); ai++ {
			if !f.Aliens.Alive(ai) {
				continue
			}
			a := f.Aliens.At(ai)
			if !core.Collide(p, a) {
				continue
			}
			f.Projectiles.Destroy(pi)
			if a.TakeDamage(p.Damage) {
				Kill(f, ai)
			}
			return
		}
	})
}

// Kill removes the alien at slot i, leaves an explosion where it was and
// credits the field's player
func Kill(f *core.Field, i int) {
	a := f.Aliens.At(i)
	f.Aliens.Destroy(i)
	f.Explosions.Spawn(core.NewExplosion(a.CenterX(), a.CenterY(), f.Cfg, f.Rng))
	points := f.Player.KillScore(f.Cfg.PointsPerKill)
	f.AddScore(points)
	f.Emit(core.EvtAlienKilled, core.KillInfo{X: a.X, Y: a.Y, Points: points})
}

// PlayerHit reports whether any live alien overlaps the player
func PlayerHit(f *core.Field) bool {
	for i := 0; i < f.Aliens.Len(); i++ {
		if f.Aliens.Alive(i) && core.Collide(f.Player, f.Aliens.At(i)) {
			return true
		}
	}
	return false
}

// ClearScreenSystem fires the clear-screen ability when requested and ready
type ClearScreenSystem struct{}

func (s *ClearScreenSystem) Priority() int { return 15 }

func (s *ClearScreenSystem) Update(f *core.Field, now int64) {
	p := f.Player
	if !f.Intent.Ability || !p.ClearReady(now) {
		return
	}
	n := ClearScreen(f)
	p.LastClear = now
	p.ClearUsed = true
	f.Emit(core.EvtScreenCleared, n)
}

// ClearScreen kills every live alien and returns the count
func ClearScreen(f *core.Field) int {
	n := 0
	for i := 0; i < f.Aliens.Len(); i++ {
		if f.Aliens.Alive(i) {
			Kill(f, i)
			n++
		}
	}
	return n
}
