package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/hud"
)

// MenuButton represents a clickable menu row
type MenuButton struct {
	X, Y, W, H int
	Mode       core.Mode
}

// MenuSystem is the mode-select screen
type MenuSystem struct {
	ScreenW  int
	ScreenH  int
	hoverIdx int

	// Callbacks
	OnStartGame func(core.Mode)
	OnExitGame  func()
}

var (
	menuBtnNorm = color.RGBA{235, 235, 235, 255}
	menuBtnHov  = color.RGBA{210, 225, 245, 255}
	menuBorder  = color.RGBA{160, 160, 160, 255}
	menuAccent  = color.RGBA{0, 140, 200, 255}
)

func NewMenuSystem(screenW, screenH int) *MenuSystem {
	return &MenuSystem{
		ScreenW:  screenW,
		ScreenH:  screenH,
		hoverIdx: -1,
	}
}

// Resize lays the menu out for a new screen size
func (m *MenuSystem) Resize(screenW, screenH int) {
	m.ScreenW, m.ScreenH = screenW, screenH
}

// Update handles number keys, mouse clicks and Escape
func (m *MenuSystem) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if m.OnExitGame != nil {
			m.OnExitGame()
		}
		return
	}

	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(k) {
			m.start(i)
			return
		}
	}

	mx, my := ebiten.CursorPosition()
	m.hoverIdx = -1
	for i, b := range m.buttons() {
		if m.clickInRect(mx, my, b.X, b.Y, b.W, b.H) {
			m.hoverIdx = i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.hoverIdx >= 0 {
		m.start(m.hoverIdx)
	}
}

func (m *MenuSystem) start(i int) {
	mode, ok := hud.ModeForChoice(i)
	if ok && m.OnStartGame != nil {
		m.OnStartGame(mode)
	}
}

func (m *MenuSystem) buttons() []MenuButton {
	bw, bh := 420, 52
	buttons := make([]MenuButton, len(hud.MenuEntries))
	for i, e := range hud.MenuEntries {
		y := int(hud.MenuRowY(float64(m.ScreenH), i))
		buttons[i] = MenuButton{X: m.ScreenW/2 - bw/2, Y: y - 16, W: bw, H: bh, Mode: e.Mode}
	}
	return buttons
}

func (m *MenuSystem) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBackground)
	for i, b := range m.buttons() {
		m.drawMenuButton(screen, b, i == m.hoverIdx)
	}
	DrawScreen(screen, hud.Menu(float64(m.ScreenW), float64(m.ScreenH)), m.ScreenW, m.ScreenH)
}

func (m *MenuSystem) drawMenuButton(screen *ebiten.Image, b MenuButton, hovered bool) {
	clr, border := menuBtnNorm, menuBorder
	if hovered {
		clr, border = menuBtnHov, menuAccent
	}
	drawRoundedRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 6, clr)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, border, false)
}

func (m *MenuSystem) clickInRect(mx, my, x, y, w, h int) bool {
	return mx >= x && mx < x+w && my >= y && my < y+h
}

// drawRoundedRect fills a rectangle with rounded corners of radius r
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	vector.DrawFilledRect(screen, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(screen, x, y+r, w, h-2*r, clr, true)
	for _, c := range [][2]float32{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}} {
		vector.DrawFilledCircle(screen, c[0], c[1], r, clr, true)
	}
}
