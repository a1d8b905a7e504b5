package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// SoundID identifies a sound effect
type SoundID string

const (
	SndShot      SoundID = "shot"
	SndExplosion SoundID = "explosion"
	SndClear     SoundID = "clear"
	SndOffer     SoundID = "offer"
	SndPick      SoundID = "pick"
	SndWin       SoundID = "win"
	SndLose      SoundID = "lose"
)

var sounds = map[SoundID]func() beep.Streamer{
	SndShot:      shotSound,
	SndExplosion: explosionSound,
	SndClear:     clearSound,
	SndOffer:     offerSound,
	SndPick:      pickSound,
	SndWin:       winSound,
	SndLose:      loseSound,
}

// maxVoices caps how many effects can overlap
const maxVoices = 16

// AudioManager mixes synthesised effects into one endless stream. It is
// both a beep.Streamer and an io.Reader of float32 stereo PCM.
type AudioManager struct {
	MasterVolume float64

	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	muted  bool
	buf    [][2]float64
}

func NewAudioManager() *AudioManager {
	am := &AudioManager{mixer: &beep.Mixer{}}
	am.volume = &effects.Volume{Streamer: am.mixer, Base: 2}
	am.SetVolume(0.8)
	return am
}

// PlaySFX starts a sound effect. Unknown ids and full mixers are ignored.
func (am *AudioManager) PlaySFX(id SoundID) {
	gen, ok := sounds[id]
	if !ok {
		return
	}
	am.mu.Lock()
	defer am.mu.Unlock()
	if am.mixer.Len() >= maxVoices {
		return
	}
	am.mixer.Add(gen())
}

// Playing returns the number of active effects
func (am *AudioManager) Playing() int {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.mixer.Len()
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.mu.Lock()
	defer am.mu.Unlock()
	am.MasterVolume = v
	am.applyVolume()
}

// SetMuted silences output without dropping playing effects
func (am *AudioManager) SetMuted(m bool) {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.muted = m
	am.applyVolume()
}

func (am *AudioManager) Muted() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.muted
}

func (am *AudioManager) applyVolume() {
	am.volume.Silent = am.muted || am.MasterVolume <= 0
	if !am.volume.Silent {
		am.volume.Volume = math.Log2(am.MasterVolume)
	}
}

// Stream fills samples with the current mix. It never ends.
func (am *AudioManager) Stream(samples [][2]float64) (int, bool) {
	am.mu.Lock()
	defer am.mu.Unlock()
	n, _ := am.volume.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (am *AudioManager) Err() error { return nil }

// Read encodes the mix as little-endian float32 stereo frames
func (am *AudioManager) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(am.buf) < frames {
		am.buf = make([][2]float64, frames)
	}
	buf := am.buf[:frames]
	am.Stream(buf)
	for i, s := range buf {
		binary.LittleEndian.PutUint32(p[i*8:], math.Float32bits(float32(s[0])))
		binary.LittleEndian.PutUint32(p[i*8+4:], math.Float32bits(float32(s[1])))
	}
	return frames * 8, nil
}

// Subscribe plays effects for gameplay events on bus
func (am *AudioManager) Subscribe(bus *core.EventBus) {
	on := func(t core.EventType, id SoundID) {
		bus.On(t, func(core.Event) { am.PlaySFX(id) })
	}
	on(core.EvtShotFired, SndShot)
	on(core.EvtAlienKilled, SndExplosion)
	on(core.EvtScreenCleared, SndClear)
	on(core.EvtUpgradeOffered, SndOffer)
	on(core.EvtUpgradeApplied, SndPick)
	on(core.EvtMatchWon, SndWin)
	on(core.EvtPlayerLost, SndLose)
}
