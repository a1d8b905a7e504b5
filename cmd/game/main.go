package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/1siamBot/alien-shooter/engine/audio"
	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/input"
	"github.com/1siamBot/alien-shooter/engine/match"
	"github.com/1siamBot/alien-shooter/engine/render"
	"github.com/1siamBot/alien-shooter/engine/ui"
)

const title = "Alien Shooter"

// Game implements ebiten.Game interface
type Game struct {
	session  *match.Session
	input    *input.InputState
	menu     *ui.MenuSystem
	hud      *ui.HUD
	renderer *render.Renderer
	scale    float64
	quit     bool
}

func NewGame(session *match.Session, scale float64) *Game {
	g := &Game{
		session:  session,
		input:    input.NewInputState(),
		renderer: render.NewRenderer(0, 0),
		hud:      ui.NewHUD(0, 0),
		menu:     ui.NewMenuSystem(0, 0),
		scale:    scale,
	}
	g.menu.OnStartGame = func(mode core.Mode) {
		if err := g.session.Start(mode); err != nil {
			log.Printf("menu: %v", err)
		}
		g.resize()
	}
	g.menu.OnExitGame = func() { g.quit = true }
	g.resize()
	return g
}

// resize matches the window to the current screen
func (g *Game) resize() {
	w, h := g.session.Size()
	sw, sh := int(w), int(h)
	g.renderer.ScreenW, g.renderer.ScreenH = sw, sh
	g.hud.ScreenW, g.hud.ScreenH = sw, sh
	g.menu.Resize(sw, sh)
	ebiten.SetWindowSize(int(w*g.scale), int(h*g.scale))
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.session.Close()
		return ebiten.Termination
	}
	g.input.Update()

	if g.session.InMenu() {
		g.menu.Update()
		if g.quit {
			return ebiten.Termination
		}
		g.session.Step()
		return nil
	}

	if g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Escape()
		if g.session.InMenu() {
			g.resize()
		}
		return nil
	}
	if g.input.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}
	if i := g.input.Choice(); i >= 0 {
		g.session.Choose(i)
	}

	if g.session.Match.Mode == core.ModeVersus {
		g.session.Step(g.input.Intent(input.PlayerOne), g.input.Intent(input.PlayerTwo))
	} else {
		g.session.Step(g.input.Intent(input.Solo))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.InMenu() {
		g.menu.Draw(screen)
		return
	}
	snap := g.session.Match.Snapshot()
	g.renderer.Draw(screen, &snap)
	g.hud.Draw(screen, &snap)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.session.Size()
	return int(w), int(h)
}

// startAudio plays the effect mix through Ebitengine's audio context
func startAudio(am *audio.AudioManager) error {
	ctx := ebaudio.NewContext(int(audio.SampleRate))
	p, err := ctx.NewPlayerF32(am)
	if err != nil {
		return err
	}
	p.SetBufferSize(60 * time.Millisecond)
	p.Play()
	return nil
}

func main() {
	envPath := flag.String("env", ".env", "dotenv file with SHOOTER_* overrides")
	modeName := flag.String("mode", "", "skip the menu: classic, endless or versus")
	logPath := flag.String("log", "", "append logs to this file")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	cfg := core.DefaultConfig()
	settings, err := core.LoadEnv(*envPath, &cfg)
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		settings.LogFile = *logPath
	}
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	session := match.NewSession(&cfg, rand.New(rand.NewSource(settings.Seed)), log.Default())
	am := audio.NewAudioManager()
	am.SetVolume(settings.Volume)
	am.SetMuted(settings.Muted || *mute)
	am.Subscribe(session.Bus)
	if err := startAudio(am); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	if *modeName != "" {
		mode, err := core.ParseMode(*modeName)
		if err != nil {
			log.Fatal(err)
		}
		if err := session.Start(mode); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(session, settings.Scale)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
