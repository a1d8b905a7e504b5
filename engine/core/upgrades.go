package core

import "fmt"

// UpgradeKind names one upgrade choice
type UpgradeKind uint8

const (
	UpgradeBulletSpeed UpgradeKind = iota
	UpgradeClearScreen
	UpgradeTripleShot
	UpgradePlayerSpeed
	UpgradeScoreMultiplier
	UpgradeWingman
)

// AllUpgrades lists every kind in draw-pool order
var AllUpgrades = []UpgradeKind{
	UpgradeBulletSpeed,
	UpgradeClearScreen,
	UpgradeTripleShot,
	UpgradePlayerSpeed,
	UpgradeScoreMultiplier,
	UpgradeWingman,
}

var upgradeNames = [...]string{
	"Bullet Speed",
	"Clear Screen",
	"Triple Shot",
	"Ship Speed",
	"Score Multiplier",
	"Wingman",
}

func (k UpgradeKind) String() string {
	if int(k) < len(upgradeNames) {
		return upgradeNames[k]
	}
	return "Unknown"
}

// Describe returns a one-line description of what picking k does to p now
func (k UpgradeKind) Describe(p *Player, cfg *Config) string {
	switch k {
	case UpgradeBulletSpeed:
		return fmt.Sprintf("Bullets fly %d%% faster", pct(cfg.BulletSpeedUpgrade))
	case UpgradeClearScreen:
		if !p.ClearScreen {
			return fmt.Sprintf("SPACE destroys every alien (%ds cooldown)", cfg.ClearScreenCooldown/1000)
		}
		next := p.ClearCooldown - cfg.ClearScreenReduction
		if next < cfg.ClearScreenMinCooldown {
			next = cfg.ClearScreenMinCooldown
		}
		return fmt.Sprintf("Clear screen cooldown %ds -> %ds", p.ClearCooldown/1000, next/1000)
	case UpgradeTripleShot:
		if !p.TripleShot {
			return fmt.Sprintf("Fire two side shots (%d damage)", cfg.TripleShotSideDamage)
		}
		return fmt.Sprintf("Side shot damage %d -> %d", p.SideDamage, NextSideDamage(p.SideDamage, cfg))
	case UpgradePlayerSpeed:
		return fmt.Sprintf("Ship moves %d%% faster", pct(cfg.PlayerSpeedUpgrade))
	case UpgradeScoreMultiplier:
		return fmt.Sprintf("Kills score %d%% more", pct(cfg.ScoreMultiplierUpgrade))
	case UpgradeWingman:
		return "A wingman joins and fires with you"
	}
	return ""
}

// NextSideDamage returns the side-shot damage after one more triple-shot pick
func NextSideDamage(current int, cfg *Config) int {
	next := int(float64(current) * cfg.TripleShotDamageMult)
	if next > cfg.TripleShotMaxDamage {
		next = cfg.TripleShotMaxDamage
	}
	return next
}

func pct(f float64) int {
	return int(f*100 + 0.5)
}
