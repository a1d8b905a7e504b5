package systems

import (
	"github.com/1siamBot/alien-shooter/engine/core"
)

// UpgradeChoices is how many options an upgrade offer holds
const UpgradeChoices = 3

// Milestone is the payload of EvtMilestone and EvtHealthBoost
type Milestone struct {
	Score      int
	Count      int
	Multiplier float64
}

// ProgressionSystem drives endless mode: spawn milestones and health boosts
// scale the aliens, and each upgrade interval crossed opens an offer.
type ProgressionSystem struct{}

func (s *ProgressionSystem) Priority() int { return 70 }

func (s *ProgressionSystem) Update(f *core.Field, _ int64) {
	cfg := f.Cfg
	prev, cur := f.FrameStartScore, f.Score
	stop := cfg.UpgradeStopScore

	if n := Crossings(prev, min(cur, stop-1), cfg.MilestoneInterval); n > 0 {
		f.Mods.MilestoneSpawn += float64(n) * cfg.MilestoneAlienIncrease
		f.Emit(core.EvtMilestone, Milestone{Score: cur, Count: n, Multiplier: f.Mods.MilestoneSpawn})
	}
	if cur > stop {
		if n := Crossings(max(prev, stop), cur, cfg.HealthBoostInterval); n > 0 {
			f.Mods.AlienHealth += float64(n) * cfg.HealthBoostMultiplier
			f.Emit(core.EvtHealthBoost, Milestone{Score: cur, Count: n, Multiplier: f.Mods.AlienHealth})
		}
	}

	if f.PendingUpgrades == nil && UpgradeDue(f) {
		f.PendingUpgrades = Offer(f.Player, cfg, f.Rng)
		f.Emit(core.EvtUpgradeOffered, f.PendingUpgrades)
	}
}

// Crossings returns how many multiples of interval lie in (from, to]
func Crossings(from, to, interval int) int {
	if to <= from || interval <= 0 {
		return 0
	}
	return to/interval - from/interval
}

// UpgradeDue reports whether the score has crossed an upgrade interval since
// the last pick and is still below the end-game threshold
func UpgradeDue(f *core.Field) bool {
	cfg := f.Cfg
	if f.Score >= cfg.UpgradeStopScore {
		return false
	}
	return Crossings(f.UpgradeScore, f.Score, cfg.UpgradeScoreInterval) > 0
}

// Eligible reports whether kind may be offered to p
func Eligible(kind core.UpgradeKind, p *core.Player, cfg *core.Config) bool {
	if kind == core.UpgradeTripleShot {
		return !p.TripleShot || p.SideDamage < cfg.TripleShotMaxDamage
	}
	return true
}

// Offer draws three distinct eligible upgrades, padding with bullet speed
// when the pool runs short
func Offer(p *core.Player, cfg *core.Config, rng core.Rand) []core.UpgradeKind {
	pool := make([]core.UpgradeKind, 0, len(core.AllUpgrades))
	for _, k := range core.AllUpgrades {
		if Eligible(k, p, cfg) {
			pool = append(pool, k)
		}
	}
	out := make([]core.UpgradeKind, 0, UpgradeChoices)
	for _, i := range rng.Perm(len(pool)) {
		if len(out) == UpgradeChoices {
			break
		}
		out = append(out, pool[i])
	}
	for len(out) < UpgradeChoices {
		out = append(out, core.UpgradeBulletSpeed)
	}
	return out
}

// ApplyUpgrade mutates the field's player and modifiers for kind. Every
// pick also raises the alien spawn multiplier.
func ApplyUpgrade(kind core.UpgradeKind, f *core.Field) {
	cfg := f.Cfg
	p := f.Player
	switch kind {
	case core.UpgradeBulletSpeed:
		f.Mods.BulletSpeed += cfg.BulletSpeedUpgrade
	case core.UpgradeClearScreen:
		if !p.ClearScreen {
			p.ClearScreen = true
			p.ClearCooldown = cfg.ClearScreenCooldown
		} else {
			p.ClearCooldown -= cfg.ClearScreenReduction
			if p.ClearCooldown < cfg.ClearScreenMinCooldown {
				p.ClearCooldown = cfg.ClearScreenMinCooldown
			}
		}
	case core.UpgradeTripleShot:
		if !p.TripleShot {
			p.TripleShot = true
			p.SideDamage = cfg.TripleShotSideDamage
		} else {
			p.SideDamage = core.NextSideDamage(p.SideDamage, cfg)
		}
	case core.UpgradePlayerSpeed:
		p.SpeedMultiplier += cfg.PlayerSpeedUpgrade
	case core.UpgradeScoreMultiplier:
		p.ScoreMultiplier += cfg.ScoreMultiplierUpgrade
	case core.UpgradeWingman:
		f.Wingmen.Spawn(core.NewWingman(p, f.Lane, cfg, f.Rng))
		p.HasWingmen = true
	}
	f.Mods.AlienSpawn += cfg.AlienSpawnUpgrade
	f.Emit(core.EvtUpgradeApplied, kind)
}
