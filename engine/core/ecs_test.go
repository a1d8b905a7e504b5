package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolDestroyIsDeferredUntilCompact(t *testing.T) {
	p := NewPool[int]()
	for i := 1; i <= 5; i++ {
		p.Spawn(i * 10)
	}
	require.Equal(t, 5, p.Count())

	var seen []int
	p.Each(func(i int, v *int) {
		seen = append(seen, *v)
		if *v == 20 || *v == 40 {
			p.Destroy(i)
		}
	})
	assert.Equal(t, []int{10, 20, 30, 40, 50}, seen)
	assert.Equal(t, 3, p.Count())
	assert.Equal(t, 5, p.Len(), "slots stay until compact")

	p.Destroy(1)
	assert.Equal(t, 3, p.Count(), "double destroy is a no-op")

	p.Compact()
	assert.Equal(t, []int{10, 30, 50}, p.Items())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, EntityID(3), p.ID(1))
}

func TestPoolIDsAreNotReused(t *testing.T) {
	p := NewPool[string]()
	a := p.Spawn("a")
	p.Clear()
	b := p.Spawn("b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 1, p.Count())
}

type recordSystem struct {
	name     string
	priority int
	log      *[]string
	lose     bool
}

func (s *recordSystem) Priority() int { return s.priority }

func (s *recordSystem) Update(f *Field, _ int64) {
	*s.log = append(*s.log, s.name)
	if s.lose {
		f.Lost = true
	}
}

func newTestField() *Field {
	cfg := DefaultConfig()
	return NewField(0, Rect{W: cfg.FieldWidth, H: cfg.FieldHeight}, &cfg, &seqRand{}, NewEventBus())
}

func TestFieldRunsSystemsByPriority(t *testing.T) {
	f := newTestField()
	var log []string
	f.AddSystem(&recordSystem{name: "combat", priority: 60, log: &log})
	f.AddSystem(&recordSystem{name: "input", priority: 10, log: &log})
	f.AddSystem(&recordSystem{name: "spawn", priority: 20, log: &log})

	f.Tick(0)
	assert.Equal(t, []string{"input", "spawn", "combat"}, log)
	assert.Equal(t, uint64(1), f.TickCount)
}

func TestFieldStopsAfterLoss(t *testing.T) {
	f := newTestField()
	var log []string
	f.AddSystem(&recordSystem{name: "move", priority: 50, log: &log, lose: true})
	f.AddSystem(&recordSystem{name: "combat", priority: 60, log: &log})

	f.Tick(0)
	assert.Equal(t, []string{"move"}, log)
	assert.True(t, f.Lost)
}

func TestFieldResetIsIdempotent(t *testing.T) {
	f := newTestField()
	f.Score = 120
	f.Mods.AlienHealth = 2
	f.Aliens.Spawn(Alien{})
	f.LastShot = 999
	f.Player.X = 3

	f.Reset(0)
	once := *f.Player
	onceMods := f.Mods
	f.Reset(0)

	assert.Equal(t, once, *f.Player)
	assert.Equal(t, onceMods, f.Mods)
	assert.Equal(t, DefaultModifiers(), f.Mods)
	assert.Zero(t, f.Score)
	assert.Zero(t, f.Aliens.Count())
	assert.Zero(t, f.LastShot)

	f.Reset(4200)
	assert.Equal(t, int64(4200), f.LastSpawn)
	assert.Equal(t, int64(4200), f.LastShot)
}

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var got []int
	bus.On(EvtAlienKilled, func(e Event) {
		got = append(got, e.Payload.(KillInfo).Points)
		bus.Emit(Event{Type: EvtAlienKilled, Payload: KillInfo{Points: 99}})
	})
	bus.Emit(Event{Type: EvtAlienKilled, Payload: KillInfo{Points: 5}})
	bus.Emit(Event{Type: EvtShotFired})

	bus.Dispatch()
	assert.Equal(t, []int{5}, got)
	assert.Equal(t, 1, bus.Pending(), "events raised by handlers wait for the next dispatch")

	bus.Dispatch()
	assert.Equal(t, []int{5, 99}, got)
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(60)
	for i := 0; i < 60; i++ {
		c.Step()
	}
	assert.Equal(t, int64(1000), c.Millis())
	c.Reset()
	assert.Zero(t, c.Millis())
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{
		"classic": ModeClassic,
		"Endless": ModeEndless,
		"random":  ModeEndless,
		"VERSUS":  ModeVersus,
	} {
		got, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseMode("arcade")
	assert.Error(t, err)
}
