package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// Bindings maps keys to one player's intent. Any key in a list triggers it.
type Bindings struct {
	Left, Right []ebiten.Key
	Up, Down    []ebiten.Key
	Ability     []ebiten.Key
}

var (
	// Solo accepts both the arrows and WASD
	Solo = Bindings{
		Left:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Up:      []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Down:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Ability: []ebiten.Key{ebiten.KeySpace},
	}
	// PlayerOne is the left half in versus
	PlayerOne = Bindings{
		Left:  []ebiten.Key{ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyD},
		Up:    []ebiten.Key{ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyS},
	}
	// PlayerTwo is the right half in versus
	PlayerTwo = Bindings{
		Left:  []ebiten.Key{ebiten.KeyLeft},
		Right: []ebiten.Key{ebiten.KeyRight},
		Up:    []ebiten.Key{ebiten.KeyUp},
		Down:  []ebiten.Key{ebiten.KeyDown},
	}
)

// InputState tracks keyboard state per frame
type InputState struct {
	KeysPressed map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		KeysPressed: make(map[ebiten.Key]bool),
	}
}

var trackedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
	ebiten.KeySpace, ebiten.KeyEscape, ebiten.KeyEnter,
}

// Update should be called every frame
func (s *InputState) Update() {
	for _, k := range trackedKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Intent builds one player's intent from the keys held this frame
func (s *InputState) Intent(b Bindings) core.Intent {
	return core.Intent{
		Left:    s.any(b.Left),
		Right:   s.any(b.Right),
		Up:      s.any(b.Up),
		Down:    s.any(b.Down),
		Ability: s.any(b.Ability),
	}
}

func (s *InputState) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.KeysPressed[k] {
			return true
		}
	}
	return false
}

// Choice returns the index of a number key 1-3 pressed this frame, or -1
func (s *InputState) Choice() int {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	pad := []ebiten.Key{ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3}
	for i := range keys {
		if s.IsKeyJustPressed(keys[i]) || s.IsKeyJustPressed(pad[i]) {
			return i
		}
	}
	return -1
}
