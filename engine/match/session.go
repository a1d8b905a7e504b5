package match

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// Session moves between the start menu and matches for one front end
type Session struct {
	Cfg   *core.Config
	Bus   *core.EventBus
	Clock *core.FrameClock
	Match *Match // nil while the menu is showing

	rng core.Rand
	log *log.Logger
}

// NewSession creates a session on the menu. logger may be nil.
func NewSession(cfg *core.Config, rng core.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		Cfg:   cfg,
		Bus:   core.NewEventBus(),
		Clock: core.NewFrameClock(cfg.FPS),
		rng:   rng,
		log:   logger,
	}
	s.logEvents()
	return s
}

func (s *Session) logEvents() {
	s.Bus.On(core.EvtMilestone, func(e core.Event) {
		s.log.Printf("field %d: milestone %v", e.Field, e.Payload)
	})
	s.Bus.On(core.EvtHealthBoost, func(e core.Event) {
		s.log.Printf("field %d: alien health boost %v", e.Field, e.Payload)
	})
	s.Bus.On(core.EvtUpgradeApplied, func(e core.Event) {
		s.log.Printf("field %d: upgrade %v", e.Field, e.Payload)
	})
	s.Bus.On(core.EvtPlayerLost, func(e core.Event) {
		s.log.Printf("field %d: lost at tick %d", e.Field, e.Tick)
	})
	s.Bus.On(core.EvtMatchWon, func(e core.Event) {
		s.log.Printf("field %d: won with %v points", e.Field, e.Payload)
	})
}

// InMenu reports whether the start menu is showing
func (s *Session) InMenu() bool {
	return s.Match == nil
}

// Size is the pixel size of the current screen
func (s *Session) Size() (w, h float64) {
	if s.Match == nil {
		return s.Cfg.FieldWidth, s.Cfg.FieldHeight
	}
	return s.Match.Size()
}

// Start leaves the menu and begins a match in mode
func (s *Session) Start(mode core.Mode) error {
	s.Clock.Reset()
	m, err := New(mode, s.Cfg, s.Clock, s.rng, s.Bus)
	if err != nil {
		return errors.Wrap(err, "start match")
	}
	s.Match = m
	s.log.Printf("started %s match", mode)
	return nil
}

// Menu abandons the current match
func (s *Session) Menu() {
	if s.Match != nil {
		s.log.Printf("left %s match in state %s", s.Match.Mode, s.Match.State())
	}
	s.Match = nil
}

// Restart resets a finished match. It does nothing while a match runs.
func (s *Session) Restart() bool {
	if s.Match == nil || !s.Match.State().Terminal() {
		return false
	}
	s.Clock.Reset()
	s.Match.Reset()
	return true
}

// Choose picks upgrade option i of a pending offer
func (s *Session) Choose(i int) {
	if s.Match == nil {
		return
	}
	if err := s.Match.ChooseUpgrade(i); err != nil && !errors.Is(err, ErrNotSelecting) {
		s.log.Printf("upgrade: %v", err)
	}
}

// Escape backs out one level: an offer takes its first option, a match
// returns to the menu, and the menu asks to quit.
func (s *Session) Escape() (quit bool) {
	switch {
	case s.Match == nil:
		return true
	case s.Match.State() == core.StateUpgradeSelection:
		s.Match.ForceDefaultUpgrade()
	default:
		s.Menu()
	}
	return false
}

// Close ends the session for a closing window. A pending offer takes its
// first option before the match is left.
func (s *Session) Close() {
	if s.Match != nil && s.Match.State() == core.StateUpgradeSelection {
		s.Match.ForceDefaultUpgrade()
	}
	s.Menu()
	s.Bus.Dispatch()
}

// Step advances the running match by one frame
func (s *Session) Step(intents ...core.Intent) {
	if s.Match == nil {
		s.Bus.Dispatch()
		return
	}
	s.Clock.Step()
	s.Match.Update(intents...)
}
