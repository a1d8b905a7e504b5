// Package match runs a whole game: one field for classic and endless, two
// for versus, plus the shared background, state machine and terminal checks.
package match

import (
	"github.com/pkg/errors"

	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/systems"
)

var (
	ErrNotSelecting  = errors.New("no upgrade selection pending")
	ErrInvalidChoice = errors.New("upgrade choice out of range")
	ErrUnknownMode   = errors.New("unknown mode")
)

// NoWinner is returned by Winner while nobody has won
const NoWinner = -1

// Match owns every entity of a game and steps it once per frame
type Match struct {
	Mode       core.Mode
	Cfg        *core.Config
	Fields     []*core.Field
	Background *systems.Background
	Bus        *core.EventBus
	Frame      uint64

	clock  core.Clock
	rng    core.Rand
	state  core.MatchState
	winner int
	width  float64
	height float64
}

// New creates a match for mode. bus may be nil.
func New(mode core.Mode, cfg *core.Config, clock core.Clock, rng core.Rand, bus *core.EventBus) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = core.NewEventBus()
	}
	m := &Match{
		Mode:   mode,
		Cfg:    cfg,
		Bus:    bus,
		clock:  clock,
		rng:    rng,
		winner: NoWinner,
	}

	switch mode {
	case core.ModeClassic, core.ModeEndless:
		m.width, m.height = cfg.FieldWidth, cfg.FieldHeight
		m.Fields = []*core.Field{m.newField(0, core.Rect{W: m.width, H: m.height})}
	case core.ModeVersus:
		m.width, m.height = cfg.VersusWidth, cfg.VersusHeight
		half := m.width / 2
		m.Fields = []*core.Field{
			m.newField(0, core.Rect{W: half, H: m.height}),
			m.newField(1, core.Rect{X: half, W: half, H: m.height}),
		}
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "mode %d", mode)
	}

	m.Background = systems.NewBackground(core.Rect{W: m.width, H: m.height}, cfg, rng)
	return m, nil
}

func (m *Match) newField(index int, lane core.Rect) *core.Field {
	f := core.NewField(index, lane, m.Cfg, m.rng, m.Bus)
	f.AddSystem(&systems.PlayerSystem{})
	f.AddSystem(&systems.AlienSpawner{})
	f.AddSystem(&systems.Gunner{})
	f.AddSystem(&systems.ProjectileSystem{})
	f.AddSystem(&systems.AlienSystem{})
	f.AddSystem(&systems.CombatSystem{})
	if m.Mode == core.ModeEndless {
		f.AddSystem(&systems.ClearScreenSystem{})
		f.AddSystem(&systems.WingmanSystem{})
		f.AddSystem(&systems.ProgressionSystem{})
	}
	f.AddEffect(&systems.ExplosionSystem{})
	f.Reset(m.clock.Millis())
	return f
}

// Size returns the pixel size of the whole play area
func (m *Match) Size() (w, h float64) {
	return m.width, m.height
}

// State returns the current match state
func (m *Match) State() core.MatchState {
	return m.state
}

// Winner returns the winning field index, or NoWinner
func (m *Match) Winner() int {
	return m.winner
}

// Target returns the score that wins the match, 0 when there is none
func (m *Match) Target() int {
	switch m.Mode {
	case core.ModeClassic:
		return m.Cfg.WinScore
	case core.ModeVersus:
		return m.Cfg.VersusWinScore
	}
	return 0
}

// Update steps one frame. intents[i] drives field i; missing intents are
// treated as idle.
func (m *Match) Update(intents ...core.Intent) {
	now := m.clock.Millis()

	m.Background.Update()
	for _, f := range m.Fields {
		f.Animate(now)
	}

	if m.state == core.StatePlaying {
		for i, f := range m.Fields {
			f.Intent = core.Intent{}
			if i < len(intents) {
				f.Intent = intents[i]
			}
			f.Tick(now)
		}
		m.evaluate()
	}

	m.Frame++
	m.Bus.Dispatch()
}

func (m *Match) evaluate() {
	if m.Mode == core.ModeVersus {
		m.evaluateVersus()
		return
	}

	f := m.Fields[0]
	switch {
	case f.Lost:
		m.state = core.StateLost
	case m.Mode == core.ModeClassic && f.Score >= m.Cfg.WinScore:
		m.state = core.StateWon
		m.winner = 0
		f.Emit(core.EvtMatchWon, f.Score)
	case f.PendingUpgrades != nil:
		m.state = core.StateUpgradeSelection
	}
}

// evaluateVersus hands the match to the opponent of the first field that
// lost, otherwise to the first field at the target score
func (m *Match) evaluateVersus() {
	for i, f := range m.Fields {
		if f.Lost {
			m.win(1 - i)
			return
		}
	}
	for i, f := range m.Fields {
		if f.Score >= m.Cfg.VersusWinScore {
			m.win(i)
			return
		}
	}
}

func (m *Match) win(i int) {
	m.state = core.StateWon
	m.winner = i
	m.Fields[i].Emit(core.EvtMatchWon, m.Fields[i].Score)
}

// Offer returns the upgrades on offer, nil outside upgrade selection
func (m *Match) Offer() []core.UpgradeKind {
	if m.state != core.StateUpgradeSelection {
		return nil
	}
	return m.Fields[0].PendingUpgrades
}

// ChooseUpgrade applies option i of the current offer and resumes play
func (m *Match) ChooseUpgrade(i int) error {
	if m.state != core.StateUpgradeSelection {
		return ErrNotSelecting
	}
	f := m.Fields[0]
	if i < 0 || i >= len(f.PendingUpgrades) {
		return errors.Wrapf(ErrInvalidChoice, "choice %d of %d", i+1, len(f.PendingUpgrades))
	}
	systems.ApplyUpgrade(f.PendingUpgrades[i], f)
	f.UpgradeScore = f.Score
	f.PendingUpgrades = nil
	m.state = core.StatePlaying
	return nil
}

// ForceDefaultUpgrade picks the first option when the player leaves the
// offer without choosing. It does nothing outside upgrade selection.
func (m *Match) ForceDefaultUpgrade() {
	if m.state == core.StateUpgradeSelection {
		_ = m.ChooseUpgrade(0)
	}
}

// Reset restores every field, multiplier and timer to its starting value
func (m *Match) Reset() {
	now := m.clock.Millis()
	for _, f := range m.Fields {
		f.Reset(now)
	}
	m.Background.Reset()
	m.state = core.StatePlaying
	m.winner = NoWinner
	m.Frame = 0
	m.Bus.Emit(core.Event{Type: core.EvtMatchReset})
}
