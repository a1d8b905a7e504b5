package hud

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/match"
)

// Align is the horizontal anchor of a label
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Size picks one of three text sizes
type Size int

const (
	SizeNormal Size = iota
	SizeSmall
	SizeLarge
)

// Label is one line of text in world coordinates. Y is the top edge of
// left and right aligned labels and the vertical centre of centred ones.
type Label struct {
	Text  string
	X, Y  float64
	Align Align
	Size  Size
	Color color.RGBA
}

// Screen is everything drawn over the playfield in one frame
type Screen struct {
	Dim    bool // darken the playfield behind the labels
	Labels []Label
}

var (
	ColorScore   = core.ColorText
	ColorLose    = colornames.Red
	ColorWin     = colornames.Green
	ColorPlayer1 = colornames.Blue
	ColorPlayer2 = colornames.Red
	ColorTitle   = colornames.Yellow
	ColorOverlay = colornames.White
	ColorHint    = colornames.Green
)

const (
	gameOverText   = "Game Over! Press R to restart"
	victoryText    = "Victory! Press R to restart"
	restartText    = "Press R to restart"
	upgradeTitle   = "Choose Your Upgrade!"
	upgradeHint    = "Press 1, 2 or 3 to choose upgrade"
	menuReturnHint = "Esc: menu"
)

// Build lays out the HUD for a snapshot
func Build(s *match.Snapshot) Screen {
	var out Screen
	if s.Mode == core.ModeVersus {
		out.Labels = versusLabels(s)
	} else {
		out.Labels = soloLabels(s)
	}

	switch s.State {
	case core.StateUpgradeSelection:
		out.Dim = true
		out.Labels = append(out.Labels, upgradeLabels(s)...)
	case core.StateWon, core.StateLost:
		out.Labels = append(out.Labels, bannerLabels(s)...)
	}
	return out
}

func soloLabels(s *match.Snapshot) []Label {
	f := s.Fields[0]
	labels := []Label{{Text: fmt.Sprintf("Score: %d", f.Score), X: 10, Y: 10, Color: ColorScore}}
	if s.Mode == core.ModeClassic {
		labels = append(labels, Label{
			Text: fmt.Sprintf("Target: %d", s.Target), X: s.Width - 10, Y: 10,
			Align: AlignRight, Size: SizeSmall, Color: ColorScore,
		})
		return labels
	}

	y := 34.0
	if f.ClearScreen {
		labels = append(labels, Label{Text: ClearStatus(f.ClearRemaining), X: 10, Y: y, Size: SizeSmall, Color: ColorScore})
		y += 18
	}
	if f.Wingmen > 0 {
		labels = append(labels, Label{Text: fmt.Sprintf("Wingmen: %d", f.Wingmen), X: 10, Y: y, Size: SizeSmall, Color: ColorScore})
	}
	return labels
}

// ClearStatus describes the clear-screen cooldown
func ClearStatus(remaining int64) string {
	if remaining <= 0 {
		return "Clear: ready (Space)"
	}
	return fmt.Sprintf("Clear: %ds", (remaining+999)/1000)
}

func versusLabels(s *match.Snapshot) []Label {
	mid := s.Fields[1].Lane.X
	return []Label{
		{Text: fmt.Sprintf("Player 1: %d", s.Fields[0].Score), X: 10, Y: 10, Color: ColorPlayer1},
		{Text: fmt.Sprintf("Player 2: %d", s.Fields[1].Score), X: s.Width - 10, Y: 10, Align: AlignRight, Color: ColorPlayer2},
		{Text: fmt.Sprintf("Target: %d points", s.Target), X: mid, Y: 30, Align: AlignCenter, Size: SizeSmall, Color: ColorScore},
		{Text: "Player 1: WASD", X: 10, Y: 50, Size: SizeSmall, Color: ColorPlayer1},
		{Text: "Player 2: Arrow Keys", X: s.Width - 10, Y: 50, Align: AlignRight, Size: SizeSmall, Color: ColorPlayer2},
	}
}

func upgradeLabels(s *match.Snapshot) []Label {
	cx, top := s.Width/2, s.Height/3
	labels := []Label{
		{Text: fmt.Sprintf("Score reached %d!", s.Fields[0].Score), X: cx, Y: top - 40, Align: AlignCenter, Color: ColorOverlay},
		{Text: upgradeTitle, X: cx, Y: top, Align: AlignCenter, Size: SizeLarge, Color: ColorTitle},
	}
	for i, u := range s.Upgrades {
		labels = append(labels, Label{
			Text:  fmt.Sprintf("%d. %s", i+1, u.Description),
			X:     cx,
			Y:     top + 60 + float64(i)*30,
			Align: AlignCenter,
			Color: ColorOverlay,
		})
	}
	return append(labels, Label{Text: upgradeHint, X: cx, Y: top + 170, Align: AlignCenter, Color: ColorHint})
}

func bannerLabels(s *match.Snapshot) []Label {
	cx, cy := s.Width/2, s.Height/2
	hint := Label{Text: menuReturnHint, X: cx, Y: cy + 64, Align: AlignCenter, Size: SizeSmall, Color: ColorScore}

	if s.Mode == core.ModeVersus {
		clr := ColorPlayer1
		if s.Winner == 1 {
			clr = ColorPlayer2
		}
		return []Label{
			{Text: WinnerText(s.Winner), X: cx, Y: cy, Align: AlignCenter, Size: SizeLarge, Color: clr},
			{Text: restartText, X: cx, Y: cy + 40, Align: AlignCenter, Size: SizeSmall, Color: ColorHint},
			hint,
		}
	}

	if s.State == core.StateWon {
		return []Label{{Text: victoryText, X: cx, Y: cy, Align: AlignCenter, Color: ColorWin}, hint}
	}
	return []Label{{Text: gameOverText, X: cx, Y: cy, Align: AlignCenter, Color: ColorLose}, hint}
}

// WinnerText names the versus winner
func WinnerText(winner int) string {
	if winner < 0 {
		return "Draw!"
	}
	return fmt.Sprintf("Player %d Wins!", winner+1)
}
