// Package audio turns match events into short synthesized sound cues.
package audio

import (
	"math"
	"time"

	"lightcycle/internal/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is used for every generated cue.
const SampleRate = beep.SampleRate(44100)

// Cue names one sound.
type Cue int

const (
	CueTurn Cue = iota
	CueCrash
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueTurn:
		return "turn"
	case CueCrash:
		return "crash"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "unknown"
}

// CueForEvent picks the cue for a match event, if any. Only the local player's
// turns click; AI turns stay silent.
func CueForEvent(e game.Event) (Cue, bool) {
	switch e.Type {
	case game.EventTurn:
		return CueTurn, e.Player == 1
	case game.EventCrash:
		return CueCrash, true
	case game.EventFinished:
		if e.Player == 1 {
			return CueWin, true
		}
		return CueLose, true
	}
	return 0, false
}

type wave int

const (
	waveSine wave = iota
	waveSquare
)

// tone is a fixed-frequency oscillator with a linear release over its last
// quarter.
type tone struct {
	freq    float64
	wave    wave
	phase   float64
	pos     int
	total   int
	release int
}

func newTone(freq float64, d time.Duration, w wave) *tone {
	total := SampleRate.N(d)
	return &tone{freq: freq, wave: w, total: total, release: total / 4}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		}
		if left := t.total - t.pos; t.release > 0 && left < t.release {
			v *= float64(left) / float64(t.release)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s by vol in [0,1]; zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer builds a fresh streamer for c at the given volume.
func Streamer(c Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueTurn:
		s = newTone(660, 40*time.Millisecond, waveSquare)
	case CueCrash:
		s = beep.Mix(
			newTone(110, 250*time.Millisecond, waveSquare),
			withVolume(newTone(55, 250*time.Millisecond, waveSine), 0.6),
		)
	case CueWin:
		s = beep.Seq(
			newTone(523.25, 120*time.Millisecond, waveSine),
			newTone(659.25, 120*time.Millisecond, waveSine),
			newTone(783.99, 240*time.Millisecond, waveSine),
		)
	case CueLose:
		s = beep.Seq(
			newTone(392, 150*time.Millisecond, waveSine),
			newTone(311.13, 150*time.Millisecond, waveSine),
			newTone(261.63, 300*time.Millisecond, waveSine),
		)
	default:
		return nil
	}
	return withVolume(s, vol)
}

// cueDuration returns how long c plays.
func cueDuration(c Cue) time.Duration {
	switch c {
	case CueTurn:
		return 40 * time.Millisecond
	case CueCrash:
		return 250 * time.Millisecond
	case CueWin:
		return 480 * time.Millisecond
	case CueLose:
		return 600 * time.Millisecond
	}
	return 0
}
