package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// drain streams s to the end and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestOscillatorLengthAndRange(t *testing.T) {
	d := 100 * time.Millisecond
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewOscillator(440, d, wave, SampleRate))
		assert.Len(t, samples, SampleRate.N(d))
		for _, s := range samples {
			require.LessOrEqual(t, math.Abs(s[0]), 1.0)
			require.Equal(t, s[0], s[1])
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, SampleRate)
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, SampleRate))
	require.Len(t, samples, SampleRate.N(d))

	assert.Zero(t, samples[0][0], "attack starts silent")
	assert.InDelta(t, 1.0, samples[len(samples)/2][0], 1e-9)
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.01, "release ends near silence")
}

func TestEverySoundEnds(t *testing.T) {
	for id, gen := range sounds {
		samples := drain(t, gen())
		assert.NotEmpty(t, samples, id)
		assert.Positive(t, peak(samples), id)
		assert.LessOrEqual(t, len(samples), SampleRate.N(2*time.Second), id)
	}
}

func TestManagerMixesAndRetiresVoices(t *testing.T) {
	am := NewAudioManager()
	am.PlaySFX(SndShot)
	am.PlaySFX("missing")
	assert.Equal(t, 1, am.Playing())

	buf := make([][2]float64, SampleRate.N(time.Second))
	n, ok := am.Stream(buf)
	assert.Equal(t, len(buf), n)
	assert.True(t, ok, "the mix never ends")
	assert.Positive(t, peak(buf))

	am.Stream(buf)
	assert.Zero(t, am.Playing())
	assert.Zero(t, peak(buf))
}

func TestManagerVoiceCap(t *testing.T) {
	am := NewAudioManager()
	for i := 0; i < maxVoices+5; i++ {
		am.PlaySFX(SndExplosion)
	}
	assert.Equal(t, maxVoices, am.Playing())
}

func TestManagerMuteAndVolume(t *testing.T) {
	am := NewAudioManager()
	am.SetVolume(3)
	assert.Equal(t, 1.0, am.MasterVolume)
	am.SetVolume(-1)
	assert.Equal(t, 0.0, am.MasterVolume)

	buf := make([][2]float64, 2048)
	am.PlaySFX(SndWin)
	am.Stream(buf)
	assert.Zero(t, peak(buf), "zero volume is silent")

	am.SetVolume(1)
	am.SetMuted(true)
	assert.True(t, am.Muted())
	am.Stream(buf)
	assert.Zero(t, peak(buf))

	am.SetMuted(false)
	am.Stream(buf)
	assert.Positive(t, peak(buf), "muting keeps the voice playing")
}

func TestManagerReadEncodesFloat32(t *testing.T) {
	am := NewAudioManager()
	am.SetVolume(1)
	am.PlaySFX(SndLose)

	p := make([]byte, 8*1024+3)
	n, err := am.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 8*1024, n)

	loudest := 0.0
	for i := 0; i < n; i += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(p[i:]))
		loudest = math.Max(loudest, math.Abs(float64(v)))
	}
	assert.Positive(t, loudest)

	n, err = am.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubscribePlaysOnEvents(t *testing.T) {
	am := NewAudioManager()
	bus := core.NewEventBus()
	am.Subscribe(bus)

	bus.Emit(core.Event{Type: core.EvtShotFired})
	bus.Emit(core.Event{Type: core.EvtAlienKilled})
	bus.Emit(core.Event{Type: core.EvtMilestone})
	assert.Zero(t, am.Playing(), "nothing plays before dispatch")

	bus.Dispatch()
	assert.Equal(t, 2, am.Playing())
}
