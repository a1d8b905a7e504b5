package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"github.com/1siamBot/alien-shooter/engine/audio"
	"github.com/1siamBot/alien-shooter/engine/core"
	"github.com/1siamBot/alien-shooter/engine/hud"
	"github.com/1siamBot/alien-shooter/engine/match"
	"github.com/1siamBot/alien-shooter/engine/termview"
)

// game drives a session from terminal events
type game struct {
	session *match.Session
	view    *termview.View
	keys    *termview.Keys
	quit    bool
}

func (g *game) handleKey(ev *tcell.EventKey) {
	switch termview.CommandOf(ev) {
	case termview.CmdQuit:
		g.quit = true
		return
	case termview.CmdMenu:
		g.keys.Release()
		g.quit = g.session.Escape()
		return
	case termview.CmdRestart:
		if g.session.Restart() {
			g.keys.Release()
		}
		return
	}

	if i := termview.Choice(ev); i >= 0 {
		if g.session.InMenu() {
			if mode, ok := hud.ModeForChoice(i); ok {
				if err := g.session.Start(mode); err != nil {
					log.Printf("menu: %v", err)
				}
			}
			return
		}
		g.session.Choose(i)
		return
	}
	g.keys.Handle(ev)
}

func (g *game) update() {
	switch {
	case g.session.InMenu():
		g.session.Step()
	case g.session.Match.Mode == core.ModeVersus:
		g.session.Step(g.keys.Intent(termview.PlayerOne), g.keys.Intent(termview.PlayerTwo))
	default:
		g.session.Step(g.keys.Intent(termview.Solo))
	}
	g.keys.Step()
}

func (g *game) render() {
	if g.session.InMenu() {
		w, h := g.session.Size()
		g.view.DrawMenu(w, h)
		return
	}
	snap := g.session.Match.Snapshot()
	g.view.Draw(&snap)
}

// startAudio hands the effect mix to the system speaker
func startAudio(am *audio.AudioManager) error {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(am)
	return nil
}

func main() {
	envPath := flag.String("env", ".env", "dotenv file with SHOOTER_* overrides")
	modeName := flag.String("mode", "", "skip the menu: classic, endless or versus")
	logPath := flag.String("log", "", "append logs to this file")
	mute := flag.Bool("mute", false, "disable sound effects")
	hold := flag.Int("hold", termview.DefaultHoldFrames, "frames a key stays held after its last repeat")
	flag.Parse()

	cfg := core.DefaultConfig()
	settings, err := core.LoadEnv(*envPath, &cfg)
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		settings.LogFile = *logPath
	}
	// the screen owns the terminal, so logs only go to a file
	log.SetOutput(io.Discard)
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	session := match.NewSession(&cfg, rand.New(rand.NewSource(settings.Seed)), log.Default())
	if *modeName != "" {
		mode, err := core.ParseMode(*modeName)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		if err := session.Start(mode); err != nil {
			log.Fatal(err)
		}
	}

	am := audio.NewAudioManager()
	am.SetVolume(settings.Volume)
	am.SetMuted(settings.Muted || *mute)
	am.Subscribe(session.Bus)
	if !am.Muted() {
		if err := startAudio(am); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer s.Fini()
	s.HideCursor()

	w, h := session.Size()
	g := &game{
		session: session,
		view:    termview.New(s, w, h),
		keys:    termview.NewKeys(*hold),
	}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			events <- s.PollEvent()
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer tick.Stop()

	for !g.quit {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				g.handleKey(e)
			}
		case <-tick.C:
			g.update()
			g.render()
		}
	}
	session.Close()
}
