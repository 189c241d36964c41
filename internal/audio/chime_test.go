package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func TestChimeIsFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := Chime(rate)
	samples := drain(t, s)
	require.NoError(t, s.Err())

	assert.Equal(t, rate.N(noteDuration)*len(chimeNotes), len(samples))

	peak := 0.0
	for i, smp := range samples {
		if smp[0] < -1 || smp[0] > 1 || smp[1] < -1 || smp[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, smp)
		}
		if smp[0] > peak {
			peak = smp[0]
		}
	}
	assert.Greater(t, peak, 0.1, "chime should be audible")
	assert.LessOrEqual(t, peak, chimeVolume+1e-9)
}

func TestToneEnvelopeStartsAndEndsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	tn := newTone(440, rate)
	samples := drain(t, tn)
	require.Len(t, samples, rate.N(noteDuration))
	assert.Zero(t, samples[0][0])
	assert.InDelta(t, 0, samples[len(samples)-1][0], 0.01)
	assert.Equal(t, samples[100][0], samples[100][1])
	assert.NoError(t, tn.Err())
}

func TestUninitializedPlayerIsNoop(t *testing.T) {
	p := NewPlayer()
	require.NotNil(t, p)
	p.PlaySolved()
	p.Close()
}
