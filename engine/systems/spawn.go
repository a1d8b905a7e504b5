package systems

import (
	"github.com/1siamBot/alien-shooter/engine/core"
)

// AlienSpawner drops a random wave of aliens at the top of the lane every
// spawn interval. The timer resets to the trigger time.
type AlienSpawner struct{}

func (s *AlienSpawner) Priority() int { return 20 }

func (s *AlienSpawner) Update(f *core.Field, now int64) {
	cfg := f.Cfg
	if now-f.LastSpawn < cfg.AlienSpawnInterval {
		return
	}
	n := SpawnWave(f)
	f.LastSpawn = now
	f.Emit(core.EvtAlienSpawned, n)
}

// WaveSize returns a random alien count in [min, max*multiplier]
func WaveSize(cfg *core.Config, mult float64, rng core.Rand) int {
	hi := int(float64(cfg.MaxAliensPerSpawn) * mult)
	return core.RandRange(rng, cfg.MinAliensPerSpawn, hi)
}

// SpawnWave adds one wave of aliens to the field and returns the count
func SpawnWave(f *core.Field) int {
	cfg := f.Cfg
	n := WaveSize(cfg, f.Mods.SpawnMultiplier(), f.Rng)
	maxX := int(f.Lane.W - cfg.AlienSize)
	for i := 0; i < n; i++ {
		x := f.Lane.X + float64(core.RandRange(f.Rng, 0, maxX))
		f.Aliens.Spawn(core.NewAlien(x, f.Lane.Y-cfg.AlienSize, cfg, f.Mods.AlienHealth, f.Rng))
	}
	return n
}

// Gunner fires the player's weapon, and every wingman's, on the fire-rate
// cadence
type Gunner struct{}

func (s *Gunner) Priority() int { return 30 }

func (s *Gunner) Update(f *core.Field, now int64) {
	if now-f.LastShot < f.Cfg.ShotInterval() {
		return
	}
	n := Fire(f)
	f.LastShot = now
	f.Emit(core.EvtShotFired, n)
}

// Fire emits one shot event's projectiles and returns how many were created
func Fire(f *core.Field) int {
	cfg := f.Cfg
	p := f.Player
	speed := cfg.BulletSpeed * f.Mods.BulletSpeed
	clr := core.ShotColor(f.ShotCount)
	f.ShotCount++

	created := 1
	f.Projectiles.Spawn(core.NewProjectile(p.CenterX(), p.Y, cfg, speed, cfg.BulletDamage, clr))
	if p.TripleShot {
		side := speed * cfg.TripleShotSideSpeedRatio
		f.Projectiles.Spawn(core.NewProjectile(p.X, p.Y, cfg, side, p.SideDamage, clr))
		f.Projectiles.Spawn(core.NewProjectile(p.Right(), p.Y, cfg, side, p.SideDamage, clr))
		created += 2
	}

	if f.Wingmen.Count() == 0 {
		return created
	}
	wingSpeed := speed * cfg.WingmanBulletSpeedRatio
	f.Wingmen.Each(func(_ int, w *core.Wingman) {
		f.Projectiles.Spawn(core.NewProjectile(w.CenterX(), w.Y, cfg, wingSpeed, cfg.WingmanBulletDamage, core.ColorWingShot))
		created++
	})
	return created
}
