package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// stepScore runs the progression system as if one frame moved the score
// from one value to another
func stepScore(f *core.Field, from, to int) {
	f.FrameStartScore = from
	f.Score = to
	(&ProgressionSystem{}).Update(f, 0)
}

func TestCrossings(t *testing.T) {
	assert.Equal(t, 0, Crossings(0, 95, 100))
	assert.Equal(t, 2, Crossings(95, 205, 100))
	assert.Equal(t, 1, Crossings(99, 100, 100))
	assert.Equal(t, 0, Crossings(100, 100, 100))
	assert.Equal(t, 0, Crossings(200, 100, 100))
}

func TestBigJumpOffersOneUpgrade(t *testing.T) {
	f := newTestField()
	stepScore(f, 95, 205)
	require.Len(t, f.PendingUpgrades, UpgradeChoices)
	first := f.PendingUpgrades

	stepScore(f, 205, 210)
	assert.Equal(t, first, f.PendingUpgrades, "a pending offer is not replaced")
}

func TestUpgradeTrackingIsRelativeToLastPick(t *testing.T) {
	f := newTestField()
	f.UpgradeScore = 205
	stepScore(f, 205, 295)
	assert.Nil(t, f.PendingUpgrades)
	stepScore(f, 295, 300)
	assert.NotNil(t, f.PendingUpgrades)
}

func TestNoUpgradesPastEndGame(t *testing.T) {
	f := newTestField()
	f.UpgradeScore = 9950
	stepScore(f, 9995, 10000)
	assert.Nil(t, f.PendingUpgrades)
}

func TestMilestoneUsesThousandInterval(t *testing.T) {
	f := newTestField()
	f.UpgradeScore = 10000 // keep offers out of the way

	stepScore(f, 495, 500)
	assert.Equal(t, 1.0, f.Mods.MilestoneSpawn, "500 is not a milestone")
	stepScore(f, 500, 600)
	assert.Equal(t, 1.0, f.Mods.MilestoneSpawn)

	stepScore(f, 995, 1000)
	assert.InDelta(t, 1.6, f.Mods.MilestoneSpawn, 1e-9)
	stepScore(f, 1000, 1100)
	assert.InDelta(t, 1.6, f.Mods.MilestoneSpawn, 1e-9, "fires once per boundary")

	stepScore(f, 1100, 3050)
	assert.InDelta(t, 2.8, f.Mods.MilestoneSpawn, 1e-9, "two boundaries in one frame")
}

func TestEndGameSwapsMilestonesForHealth(t *testing.T) {
	f := newTestField()
	f.UpgradeScore = 10000

	stepScore(f, 9995, 10000)
	assert.Equal(t, 1.0, f.Mods.MilestoneSpawn, "10000 is past the milestone range")
	assert.Equal(t, 1.0, f.Mods.AlienHealth)

	stepScore(f, 10000, 10495)
	assert.Equal(t, 1.0, f.Mods.AlienHealth)
	stepScore(f, 10495, 10500)
	assert.InDelta(t, 1.3, f.Mods.AlienHealth, 1e-9)
	stepScore(f, 10500, 11600)
	assert.InDelta(t, 1.9, f.Mods.AlienHealth, 1e-9)
}

func TestOfferDrawsDistinctOptions(t *testing.T) {
	cfg := core.DefaultConfig()
	p := core.NewPlayer(core.Rect{W: 600, H: 750}, &cfg)
	rng := testRNG()
	for i := 0; i < 200; i++ {
		offer := Offer(p, &cfg, rng)
		require.Len(t, offer, UpgradeChoices)
		seen := map[core.UpgradeKind]bool{}
		for _, k := range offer {
			require.False(t, seen[k], "duplicate %v", k)
			seen[k] = true
		}
	}
}

func TestOfferSkipsCappedTripleShot(t *testing.T) {
	cfg := core.DefaultConfig()
	p := core.NewPlayer(core.Rect{W: 600, H: 750}, &cfg)
	p.TripleShot = true
	p.SideDamage = cfg.TripleShotMaxDamage
	assert.False(t, Eligible(core.UpgradeTripleShot, p, &cfg))

	rng := testRNG()
	for i := 0; i < 200; i++ {
		assert.NotContains(t, Offer(p, &cfg, rng), core.UpgradeTripleShot)
	}

	p.SideDamage = cfg.TripleShotMaxDamage - 1
	assert.True(t, Eligible(core.UpgradeTripleShot, p, &cfg))
}

func TestApplyTripleShot(t *testing.T) {
	f := newTestField()
	ApplyUpgrade(core.UpgradeTripleShot, f)
	assert.True(t, f.Player.TripleShot)
	assert.Equal(t, 10, f.Player.SideDamage)

	ApplyUpgrade(core.UpgradeTripleShot, f)
	assert.Equal(t, 15, f.Player.SideDamage)

	for i := 0; i < 10; i++ {
		ApplyUpgrade(core.UpgradeTripleShot, f)
		require.LessOrEqual(t, f.Player.SideDamage, f.Cfg.TripleShotMaxDamage)
	}
	assert.Equal(t, f.Cfg.TripleShotMaxDamage, f.Player.SideDamage)
}

func TestApplyClearScreenFloorsCooldown(t *testing.T) {
	f := newTestField()
	ApplyUpgrade(core.UpgradeClearScreen, f)
	assert.True(t, f.Player.ClearScreen)
	assert.Equal(t, int64(40000), f.Player.ClearCooldown)

	ApplyUpgrade(core.UpgradeClearScreen, f)
	assert.Equal(t, int64(30000), f.Player.ClearCooldown)
	ApplyUpgrade(core.UpgradeClearScreen, f)
	ApplyUpgrade(core.UpgradeClearScreen, f)
	assert.Equal(t, int64(20000), f.Player.ClearCooldown)
}

func TestApplyMultipliers(t *testing.T) {
	f := newTestField()
	ApplyUpgrade(core.UpgradeBulletSpeed, f)
	ApplyUpgrade(core.UpgradePlayerSpeed, f)
	ApplyUpgrade(core.UpgradeScoreMultiplier, f)

	assert.InDelta(t, 1.15, f.Mods.BulletSpeed, 1e-9)
	assert.InDelta(t, 1.2, f.Player.SpeedMultiplier, 1e-9)
	assert.InDelta(t, 4.8, f.Player.Speed(), 1e-9)
	assert.InDelta(t, 1.15, f.Player.ScoreMultiplier, 1e-9)
	assert.InDelta(t, 1.6, f.Mods.AlienSpawn, 1e-9, "every pick raises the spawn multiplier")
}

func TestApplyWingmanStacks(t *testing.T) {
	f := newTestField()
	ApplyUpgrade(core.UpgradeWingman, f)
	ApplyUpgrade(core.UpgradeWingman, f)
	assert.True(t, f.Player.HasWingmen)
	assert.Equal(t, 2, f.Wingmen.Count())
}
