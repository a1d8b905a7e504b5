package core

import (
	"image/color"
	"math"
)

// ---- Wandering ----

// Wander is the side-to-side drift shared by aliens and wingmen. The
// countdown is in frames.
type Wander struct {
	Dir       float64 // -1 or +1
	Speed     float64
	Countdown int
	MinFrames int
	MaxFrames int
}

// NewWander creates a wander state with a random direction and countdown
func NewWander(speed float64, minFrames, maxFrames int, rng Rand) Wander {
	return Wander{
		Dir:       RandSign(rng),
		Speed:     speed,
		Countdown: RandRange(rng, minFrames, maxFrames),
		MinFrames: minFrames,
		MaxFrames: maxFrames,
	}
}

// Step moves body horizontally inside [left, right-width]. Leaving the lane
// flips the direction and clamps the body back in.
func (w *Wander) Step(body *Rect, left, right float64, rng Rand) {
	body.X += w.Dir * w.Speed
	if body.X <= left {
		body.X = left
		w.Dir = 1
	} else if body.X >= right-body.W {
		body.X = right - body.W
		w.Dir = -1
	}

	w.Countdown--
	if w.Countdown <= 0 {
		w.Dir = RandSign(rng)
		w.Countdown = RandRange(rng, w.MinFrames, w.MaxFrames)
	}
}

// ---- Alien ----

// Alien descends at a constant speed while wandering sideways
type Alien struct {
	Rect
	Health    int
	MaxHealth int
	VSpeed    float64
	Wander
}

// NewAlien creates an alien whose health is scaled by healthMult
func NewAlien(x, y float64, cfg *Config, healthMult float64, rng Rand) Alien {
	hp := int(float64(cfg.AlienHealth) * healthMult)
	if hp < 1 {
		hp = 1
	}
	return Alien{
		Rect:      Rect{X: x, Y: y, W: cfg.AlienSize, H: cfg.AlienSize},
		Health:    hp,
		MaxHealth: hp,
		VSpeed:    cfg.AlienSpeed,
		Wander:    NewWander(cfg.AlienHorizontalSpeed, cfg.DirectionChangeMin, cfg.DirectionChangeMax, rng),
	}
}

// Move descends one frame and wanders inside the lane
func (a *Alien) Move(lane Rect, rng Rand) {
	a.Y += a.VSpeed
	a.Step(&a.Rect, lane.X, lane.Right(), rng)
}

// TakeDamage lowers health, never below zero, and reports death
func (a *Alien) TakeDamage(dmg int) bool {
	if dmg < 0 {
		dmg = 0
	}
	a.Health -= dmg
	if a.Health <= 0 {
		a.Health = 0
		return true
	}
	return false
}

// HealthRatio returns health as a fraction of max
func (a *Alien) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// ---- Projectile ----

// Projectile flies straight up. Damage is fixed at creation.
type Projectile struct {
	Rect
	VSpeed float64
	Damage int
	Color  color.RGBA
}

// NewProjectile creates a projectile centred horizontally on cx with its top at y
func NewProjectile(cx, y float64, cfg *Config, speed float64, damage int, clr color.RGBA) Projectile {
	return Projectile{
		Rect:   Rect{X: cx - cfg.BulletWidth/2, Y: y, W: cfg.BulletWidth, H: cfg.BulletHeight},
		VSpeed: speed,
		Damage: damage,
		Color:  clr,
	}
}

// Move translates the projectile one frame
func (p *Projectile) Move() {
	p.Y -= p.VSpeed
}

// Gone reports whether the projectile has left the top of the lane
func (p *Projectile) Gone(lane Rect) bool {
	return p.Y < lane.Y
}

// ---- Explosion ----

// Particle is one fragment of an explosion
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
}

// Explosion is a burst of particles that lives a fixed number of frames
type Explosion struct {
	X, Y      float64
	Frame     int
	Duration  int
	Damping   float64
	Particles []Particle
}

// NewExplosion creates a radial burst centred on (cx, cy)
func NewExplosion(cx, cy float64, cfg *Config, rng Rand) Explosion {
	n := cfg.ExplosionParticles
	e := Explosion{
		X:         cx,
		Y:         cy,
		Duration:  cfg.ExplosionDuration,
		Damping:   cfg.ExplosionDamping,
		Particles: make([]Particle, n),
	}
	for i := range e.Particles {
		angle := 2 * math.Pi * float64(i) / float64(n)
		e.Particles[i] = Particle{
			X:      cx,
			Y:      cy,
			VX:     math.Cos(angle) * cfg.ExplosionSpeed,
			VY:     math.Sin(angle) * cfg.ExplosionSpeed,
			Radius: float64(RandRange(rng, cfg.ParticleMinRadius, cfg.ParticleMaxRadius)),
			Color:  ParticleColors[rng.Intn(len(ParticleColors))],
		}
	}
	return e
}

// Update advances one frame and reports whether the explosion is finished
func (e *Explosion) Update() bool {
	e.Frame++
	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX *= e.Damping
		p.VY *= e.Damping
	}
	return e.Done()
}

// Done reports whether the explosion has run its course
func (e *Explosion) Done() bool {
	return e.Frame >= e.Duration
}

// Progress returns elapsed life in [0, 1]
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return math.Min(1, float64(e.Frame)/float64(e.Duration))
}

// ---- Wingman ----

// Wingman is a small escort that patrols the bottom of the field
type Wingman struct {
	Rect
	Wander
}

// NewWingman creates a wingman under the player's current x
func NewWingman(p *Player, lane Rect, cfg *Config, rng Rand) Wingman {
	size := cfg.WingmanSize()
	w := Wingman{
		Rect: Rect{
			X: p.X + float64(int(p.W)/2) - float64(int(size)/2),
			Y: lane.Bottom() - cfg.WingmanYOffset - size,
			W: size,
			H: size,
		},
		Wander: NewWander(cfg.WingmanSpeed, cfg.DirectionChangeMin, cfg.DirectionChangeMax, rng),
	}
	w.ClampInto(lane)
	return w
}

// Move wanders one frame
func (w *Wingman) Move(lane Rect, rng Rand) {
	w.Step(&w.Rect, lane.X, lane.Right(), rng)
}
