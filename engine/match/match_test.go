package match

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/alien-shooter/engine/core"
)

const frameMs = 1000 / 60

func newTestMatch(t *testing.T, mode core.Mode) (*Match, *core.ManualClock) {
	t.Helper()
	cfg := core.DefaultConfig()
	clock := &core.ManualClock{}
	m, err := New(mode, &cfg, clock, rand.New(rand.NewSource(7)), nil)
	require.NoError(t, err)
	return m, clock
}

func step(m *Match, clock *core.ManualClock, intents ...core.Intent) {
	clock.Advance(frameMs)
	m.Update(intents...)
}

func TestNewRejectsUnknownMode(t *testing.T) {
	cfg := core.DefaultConfig()
	_, err := New(core.Mode(9), &cfg, &core.ManualClock{}, rand.New(rand.NewSource(1)), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.FireRate = 0
	_, err := New(core.ModeClassic, &cfg, &core.ManualClock{}, rand.New(rand.NewSource(1)), nil)
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}

func TestFieldLayout(t *testing.T) {
	m, _ := newTestMatch(t, core.ModeClassic)
	require.Len(t, m.Fields, 1)
	assert.Equal(t, core.Rect{W: 600, H: 750}, m.Fields[0].Lane)

	v, _ := newTestMatch(t, core.ModeVersus)
	require.Len(t, v.Fields, 2)
	assert.Equal(t, core.Rect{W: 500, H: 750}, v.Fields[0].Lane)
	assert.Equal(t, core.Rect{X: 500, W: 500, H: 750}, v.Fields[1].Lane)
	w, h := v.Size()
	assert.Equal(t, 1000.0, w)
	assert.Equal(t, 750.0, h)
}

func TestSimulationInvariants(t *testing.T) {
	for _, mode := range []core.Mode{core.ModeClassic, core.ModeEndless, core.ModeVersus} {
		t.Run(mode.String(), func(t *testing.T) {
			m, clock := newTestMatch(t, mode)
			input := rand.New(rand.NewSource(99))
			lastScore := make([]int, len(m.Fields))
			lastHealth := map[[2]uint64]int{}

			for frame := 0; frame < 3600; frame++ {
				intents := make([]core.Intent, len(m.Fields))
				for i := range intents {
					intents[i] = core.Intent{
						Left:  input.Intn(2) == 0,
						Right: input.Intn(2) == 0,
						Up:    input.Intn(4) == 0,
						Down:  input.Intn(4) == 0,
					}
				}
				step(m, clock, intents...)
				m.ForceDefaultUpgrade()

				for i, f := range m.Fields {
					p := f.Player
					require.GreaterOrEqual(t, p.X, f.Lane.X)
					require.LessOrEqual(t, p.Right(), f.Lane.Right())
					require.GreaterOrEqual(t, p.Y, f.Lane.Y)
					require.LessOrEqual(t, p.Bottom(), f.Lane.Bottom())

					require.GreaterOrEqual(t, f.Score, lastScore[i])
					lastScore[i] = f.Score

					f.Aliens.Each(func(j int, a *core.Alien) {
						require.Positive(t, a.Health)
						require.LessOrEqual(t, a.Health, a.MaxHealth)
						key := [2]uint64{uint64(i), uint64(f.Aliens.ID(j))}
						if prev, ok := lastHealth[key]; ok {
							require.LessOrEqual(t, a.Health, prev)
						}
						lastHealth[key] = a.Health
					})
				}
			}
		})
	}
}

func TestClassicWin(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeClassic)
	won := 0
	m.Bus.On(core.EvtMatchWon, func(core.Event) { won++ })

	m.Fields[0].Score = 100
	step(m, clock)
	assert.Equal(t, core.StateWon, m.State())
	assert.Equal(t, 0, m.Winner())
	assert.Equal(t, 1, won)
}

func TestTerminalStateIsSticky(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeClassic)
	f := m.Fields[0]
	p := f.Player
	f.Aliens.Spawn(core.NewAlien(p.X, p.Y, m.Cfg, 1, rand.New(rand.NewSource(1))))
	step(m, clock)
	require.Equal(t, core.StateLost, m.State())
	assert.Equal(t, NoWinner, m.Winner())

	x := p.X
	for i := 0; i < 600; i++ {
		step(m, clock, core.Intent{Left: true})
	}
	assert.Equal(t, core.StateLost, m.State())
	assert.Equal(t, x, f.Player.X)
	assert.Zero(t, f.Projectiles.Count())
}

func TestEndlessUpgradeFlow(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeEndless)
	f := m.Fields[0]
	f.Score = 100
	f.Explosions.Spawn(core.NewExplosion(50, 50, m.Cfg, rand.New(rand.NewSource(1))))

	step(m, clock)
	require.Equal(t, core.StateUpgradeSelection, m.State())
	require.Len(t, m.Offer(), 3)

	x := f.Player.X
	frame := f.Explosions.At(0).Frame
	step(m, clock, core.Intent{Right: true})
	assert.Equal(t, x, f.Player.X, "gameplay is suspended")
	assert.Equal(t, frame+1, f.Explosions.At(0).Frame, "explosions keep animating")

	err := m.ChooseUpgrade(3)
	assert.True(t, errors.Is(err, ErrInvalidChoice))
	assert.Equal(t, core.StateUpgradeSelection, m.State())

	require.NoError(t, m.ChooseUpgrade(1))
	assert.Equal(t, core.StatePlaying, m.State())
	assert.Equal(t, 100, f.UpgradeScore)
	assert.Nil(t, m.Offer())
	assert.Equal(t, ErrNotSelecting, m.ChooseUpgrade(0))

	step(m, clock)
	assert.Equal(t, core.StatePlaying, m.State(), "no new offer until the next interval")
}

func TestForceDefaultUpgradePicksFirst(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeEndless)
	f := m.Fields[0]
	f.Score = 100
	step(m, clock)
	first := m.Offer()[0]

	var applied []core.UpgradeKind
	m.Bus.On(core.EvtUpgradeApplied, func(e core.Event) {
		applied = append(applied, e.Payload.(core.UpgradeKind))
	})
	m.ForceDefaultUpgrade()
	step(m, clock)
	assert.Equal(t, []core.UpgradeKind{first}, applied)

	m.ForceDefaultUpgrade()
	assert.Equal(t, core.StatePlaying, m.State())
}

func TestClassicHasNoUpgrades(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeClassic)
	m.Cfg.WinScore = 1000
	m.Fields[0].Score = 200
	step(m, clock)
	assert.Equal(t, core.StatePlaying, m.State())
}

func TestVersusIntentsAreIndependent(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeVersus)
	x1, x2 := m.Fields[0].Player.X, m.Fields[1].Player.X
	step(m, clock, core.Intent{Right: true}, core.Intent{Left: true})
	assert.Equal(t, x1+4, m.Fields[0].Player.X)
	assert.Equal(t, x2-4, m.Fields[1].Player.X)
}

func TestVersusLossHandsWinToOpponent(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeVersus)
	f := m.Fields[0]
	f.Aliens.Spawn(core.NewAlien(f.Player.X, f.Player.Y, m.Cfg, 1, rand.New(rand.NewSource(1))))
	step(m, clock)
	assert.Equal(t, core.StateWon, m.State())
	assert.Equal(t, 1, m.Winner())
}

func TestVersusScoreRace(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeVersus)
	m.Fields[1].Score = 500
	step(m, clock)
	assert.Equal(t, 1, m.Winner())

	m.Reset()
	m.Fields[0].Score = 500
	m.Fields[1].Score = 500
	step(m, clock)
	assert.Equal(t, 0, m.Winner(), "player one is checked first")

	m.Reset()
	m.Fields[0].Score = 150
	step(m, clock)
	assert.Equal(t, core.StatePlaying, m.State(), "versus has no upgrade offers")
}

func TestResetIsIdempotent(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeEndless)
	for i := 0; i < 900; i++ {
		step(m, clock, core.Intent{Left: i%2 == 0})
		m.ForceDefaultUpgrade()
	}
	m.Fields[0].Score = 340
	m.Fields[0].Mods.AlienHealth = 2

	m.Reset()
	once := m.Snapshot()
	onceMods := m.Fields[0].Mods
	m.Reset()
	twice := m.Snapshot()

	assert.Equal(t, once.Fields, twice.Fields)
	assert.Equal(t, once.Background, twice.Background)
	assert.Equal(t, once.State, twice.State)
	assert.Equal(t, onceMods, m.Fields[0].Mods)
	assert.Equal(t, core.DefaultModifiers(), m.Fields[0].Mods)
	assert.Equal(t, core.StatePlaying, m.State())
	assert.Zero(t, m.Fields[0].Score)
	assert.Len(t, once.Fields[0].Sprites, 1, "only the player remains")
}

func TestResetWaitsForFirstWave(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeClassic)
	waves := 0
	m.Bus.On(core.EvtAlienSpawned, func(core.Event) { waves++ })
	clock.Advance(10000)
	m.Reset()

	step(m, clock)
	f := m.Fields[0]
	assert.Zero(t, f.Aliens.Count(), "no wave right after reset")
	assert.Zero(t, f.Projectiles.Count())

	for clock.Millis() < 10000+m.Cfg.AlienSpawnInterval-frameMs {
		step(m, clock)
	}
	assert.Zero(t, waves)
	step(m, clock)
	step(m, clock)
	assert.Equal(t, 1, waves, "first wave one interval after reset")
}

func TestSnapshot(t *testing.T) {
	m, clock := newTestMatch(t, core.ModeEndless)
	f := m.Fields[0]
	a := core.NewAlien(100, 100, m.Cfg, 1, rand.New(rand.NewSource(1)))
	a.Health = 50
	f.Aliens.Spawn(a)
	f.Wingmen.Spawn(core.NewWingman(f.Player, f.Lane, m.Cfg, rand.New(rand.NewSource(1))))
	f.Score = 100
	step(m, clock)

	s := m.Snapshot()
	assert.Equal(t, core.StateUpgradeSelection, s.State)
	assert.NotEmpty(t, s.Background)
	require.Len(t, s.Upgrades, 3)
	for _, u := range s.Upgrades {
		assert.Equal(t, u.Kind.String(), u.Name)
		assert.NotEmpty(t, u.Description)
	}

	var alien, star bool
	for _, sp := range s.Fields[0].Sprites {
		switch {
		case sp.Shape == core.ShapeRect && sp.Color == core.ColorAlien:
			alien = true
			assert.InDelta(t, 0.5, sp.Health, 1e-9)
		case sp.Shape == core.ShapeStar:
			star = true
		}
	}
	assert.True(t, alien)
	assert.True(t, star)
	assert.Equal(t, 1, s.Fields[0].Wingmen)
}
