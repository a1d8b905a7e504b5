package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by every generated sound
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave that slides from freq to freq+slide over its
// duration
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator of fixed pitch
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one pitch to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		slide:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a pure sine note of fixed length
func tone(freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(SampleRate.N(d))
	}
	return NewEnvelope(beep.Take(SampleRate.N(d), s), d, 5*time.Millisecond, d/2, SampleRate)
}

func shotSound() beep.Streamer {
	d := 45 * time.Millisecond
	return newVolume(NewEnvelope(NewSweep(1200, 600, d, WaveSquare, SampleRate), d, 2*time.Millisecond, 30*time.Millisecond, SampleRate), 0.15)
}

func explosionSound() beep.Streamer {
	d := 180 * time.Millisecond
	return newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, SampleRate), d, 2*time.Millisecond, 150*time.Millisecond, SampleRate), 0.4)
}

func clearSound() beep.Streamer {
	d := 500 * time.Millisecond
	body := NewEnvelope(NewSweep(80, 900, d, WaveSaw, SampleRate), d, 20*time.Millisecond, 300*time.Millisecond, SampleRate)
	hiss := NewEnvelope(NewOscillator(0, d, WaveNoise, SampleRate), d, 5*time.Millisecond, 400*time.Millisecond, SampleRate)
	return newVolume(beep.Mix(newVolume(body, 0.5), newVolume(hiss, 0.3)), 0.6)
}

func offerSound() beep.Streamer {
	return newVolume(beep.Seq(tone(659.25, 90*time.Millisecond), tone(987.77, 140*time.Millisecond)), 0.5)
}

func pickSound() beep.Streamer {
	return newVolume(tone(1318.51, 70*time.Millisecond), 0.4)
}

func winSound() beep.Streamer {
	n := 120 * time.Millisecond
	return newVolume(beep.Seq(tone(523.25, n), tone(659.25, n), tone(783.99, n), tone(1046.5, 3*n)), 0.5)
}

func loseSound() beep.Streamer {
	d := 700 * time.Millisecond
	return newVolume(NewEnvelope(NewSweep(440, 110, d, WaveSaw, SampleRate), d, 10*time.Millisecond, 300*time.Millisecond, SampleRate), 0.4)
}
