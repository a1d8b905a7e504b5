package core

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Mode is the match variant picked in the menu
type Mode uint8

const (
	ModeClassic Mode = iota
	ModeEndless
	ModeVersus
)

var modeNames = [...]string{"Classic", "Endless", "Versus"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// ParseMode accepts a mode name in any case. "random" is the menu's name
// for endless.
func ParseMode(name string) (Mode, error) {
	if strings.EqualFold(name, "random") {
		return ModeEndless, nil
	}
	for i, n := range modeNames {
		if strings.EqualFold(name, n) {
			return Mode(i), nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", name)
}

// MatchState is the per-match state machine
type MatchState uint8

const (
	StatePlaying MatchState = iota
	StateUpgradeSelection
	StateWon
	StateLost
)

var stateNames = [...]string{"Playing", "UpgradeSelection", "Won", "Lost"}

func (s MatchState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Terminal reports whether the state only leaves through a reset
func (s MatchState) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Clock supplies elapsed wall-clock milliseconds for spawn and cooldown
// gates. Frame-count timers do not use it.
type Clock interface {
	Millis() int64
}

// SystemClock measures time since it was created
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a clock advanced by hand, for tests and frame-stepped hosts
type ManualClock struct {
	Now int64
}

func (c *ManualClock) Millis() int64 { return c.Now }

// Advance moves the clock forward by ms
func (c *ManualClock) Advance(ms int64) {
	c.Now += ms
}

// FrameClock advances a fixed step per simulated frame so millisecond gates
// stay in step with frame-count timers.
type FrameClock struct {
	frames uint64
	fps    int
}

// NewFrameClock creates a frame clock for the given tick rate
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{fps: fps}
}

// Step advances the clock by one frame
func (c *FrameClock) Step() {
	c.frames++
}

// Reset rewinds the clock to zero so a restarted match times like a new one
func (c *FrameClock) Reset() {
	c.frames = 0
}

func (c *FrameClock) Millis() int64 {
	return int64(c.frames * 1000 / uint64(c.fps))
}
