package termview

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// DefaultHoldFrames is how long one key event counts as held. Terminals
// only report presses, so auto-repeat keeps a key alive.
const DefaultHoldFrames = 8

// Key identifies a terminal key: a special key, or a rune when Code is KeyRune
type Key struct {
	Code tcell.Key
	Rune rune
}

func runeKey(r rune) Key { return Key{Code: tcell.KeyRune, Rune: r} }

// KeyOf normalises an event to a Key, folding letters to lower case
func KeyOf(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return runeKey(unicode.ToLower(ev.Rune()))
	}
	return Key{Code: ev.Key()}
}

// Bindings maps keys to one player's intent
type Bindings struct {
	Left, Right []Key
	Up, Down    []Key
	Ability     []Key
}

var (
	// Solo accepts both the arrows and WASD
	Solo = Bindings{
		Left:    []Key{{Code: tcell.KeyLeft}, runeKey('a')},
		Right:   []Key{{Code: tcell.KeyRight}, runeKey('d')},
		Up:      []Key{{Code: tcell.KeyUp}, runeKey('w')},
		Down:    []Key{{Code: tcell.KeyDown}, runeKey('s')},
		Ability: []Key{runeKey(' ')},
	}
	PlayerOne = Bindings{
		Left:  []Key{runeKey('a')},
		Right: []Key{runeKey('d')},
		Up:    []Key{runeKey('w')},
		Down:  []Key{runeKey('s')},
	}
	PlayerTwo = Bindings{
		Left:  []Key{{Code: tcell.KeyLeft}},
		Right: []Key{{Code: tcell.KeyRight}},
		Up:    []Key{{Code: tcell.KeyUp}},
		Down:  []Key{{Code: tcell.KeyDown}},
	}
)

// Keys turns key press events into held state with a short decay
type Keys struct {
	HoldFrames int
	frame      int
	until      map[Key]int
}

func NewKeys(holdFrames int) *Keys {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &Keys{HoldFrames: holdFrames, until: make(map[Key]int)}
}

// Press marks a key as held for the next HoldFrames frames
func (k *Keys) Press(key Key) {
	k.until[key] = k.frame + k.HoldFrames
}

// Handle records a key event
func (k *Keys) Handle(ev *tcell.EventKey) {
	k.Press(KeyOf(ev))
}

// Step advances one frame and forgets expired keys
func (k *Keys) Step() {
	k.frame++
	for key, until := range k.until {
		if until <= k.frame {
			delete(k.until, key)
		}
	}
}

// Held reports whether key is currently held
func (k *Keys) Held(key Key) bool {
	_, ok := k.until[key]
	return ok
}

// Release forgets every held key
func (k *Keys) Release() {
	clear(k.until)
}

// Intent builds one player's intent from the held keys
func (k *Keys) Intent(b Bindings) core.Intent {
	return core.Intent{
		Left:    k.any(b.Left),
		Right:   k.any(b.Right),
		Up:      k.any(b.Up),
		Down:    k.any(b.Down),
		Ability: k.any(b.Ability),
	}
}

func (k *Keys) any(keys []Key) bool {
	for _, key := range keys {
		if k.Held(key) {
			return true
		}
	}
	return false
}

// Choice returns 0-2 for the keys 1-3, or -1
func Choice(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune {
		return -1
	}
	if r := ev.Rune(); r >= '1' && r <= '3' {
		return int(r - '1')
	}
	return -1
}

// Command is a non-movement action decoded from a key event
type Command int

const (
	CmdNone Command = iota
	CmdRestart
	CmdMenu
	CmdQuit
)

// CommandOf decodes restart, menu and quit keys
func CommandOf(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape:
		return CmdMenu
	case tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'r':
			return CmdRestart
		case 'q':
			return CmdQuit
		}
	}
	return CmdNone
}
