// Package audio synthesizes the chime played when a maze is solved. Playback
// through the system speaker needs the sound build tag.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every streamer in this package is generated at.
const SampleRate = beep.SampleRate(44100)

const (
	noteDuration = 140 * time.Millisecond
	noteAttack   = 6 * time.Millisecond
	noteRelease  = 110 * time.Millisecond
	chimeVolume  = 0.5
)

// chimeNotes is a rising C major arpeggio (C6, E6, G6).
var chimeNotes = []float64{1046.50, 1318.51, 1567.98}

// tone is a sine oscillator with a linear attack/release envelope.
type tone struct {
	freq    float64
	rate    beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
}

func newTone(freq float64, rate beep.SampleRate) *tone {
	return &tone{
		freq:    freq,
		rate:    rate,
		total:   rate.N(noteDuration),
		attack:  rate.N(noteAttack),
		release: rate.N(noteRelease),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		vol := 1.0
		if t.pos < t.attack {
			vol = float64(t.pos) / float64(t.attack)
		} else if rs := t.total - t.release; t.pos >= rs {
			vol = float64(t.total-t.pos) / float64(t.release)
		}
		v := vol * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Chime returns a finite streamer playing the win arpeggio at rate.
func Chime(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(chimeNotes))
	for i, f := range chimeNotes {
		notes[i] = newTone(f, rate)
	}
	total := rate.N(noteDuration) * len(chimeNotes)
	return beep.Take(total, &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   math.Log2(chimeVolume),
	})
}
