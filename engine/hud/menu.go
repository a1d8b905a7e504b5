package hud

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// MenuEntry is one selectable mode on the start menu
type MenuEntry struct {
	Mode        core.Mode
	Title       string
	Description string
	Color       color.RGBA
}

// MenuEntries are listed in key order: 1, 2, 3
var MenuEntries = []MenuEntry{
	{core.ModeClassic, "1. Classic Mode", "Reach 100 points to win", colornames.Blue},
	{core.ModeEndless, "2. Random Mode", "Endless fun, upgrade every 100 points", colornames.Red},
	{core.ModeVersus, "3. Versus Mode", "2 players, first to 500 points wins", colornames.Goldenrod},
}

// ModeForChoice maps a zero-based menu choice to its mode
func ModeForChoice(i int) (core.Mode, bool) {
	if i < 0 || i >= len(MenuEntries) {
		return 0, false
	}
	return MenuEntries[i].Mode, true
}

// MenuRowY is the vertical centre of entry i's title
func MenuRowY(h float64, i int) float64 {
	return h/4 + 120 + float64(i)*60
}

// Menu lays out the start menu on a w by h screen
func Menu(w, h float64) Screen {
	cx, top := w/2, h/4
	labels := []Label{
		{Text: "Welcome to Alien Shooter!", X: cx, Y: top, Align: AlignCenter, Size: SizeLarge, Color: core.ColorText},
		{Text: "Select Your Mode", X: cx, Y: top + 60, Align: AlignCenter, Color: core.ColorText},
	}
	for i, e := range MenuEntries {
		y := MenuRowY(h, i)
		labels = append(labels,
			Label{Text: e.Title, X: cx, Y: y, Align: AlignCenter, Color: e.Color},
			Label{Text: e.Description, X: cx, Y: y + 25, Align: AlignCenter, Size: SizeSmall, Color: core.ColorText},
		)
	}
	labels = append(labels, Label{
		Text: "Press 1, 2, or 3 to choose mode", X: cx, Y: top + 320, Align: AlignCenter, Color: ColorHint,
	})
	return Screen{Labels: labels}
}
