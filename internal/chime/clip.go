// Package chime plays a short announcement when the track overview changes
// phase.
package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Output format of every clip: what the oto context is opened with.
const (
	sampleRate   = 44100
	channelCount = 2
	bytesPerSec  = sampleRate * channelCount * 2
)

// Clip is a chime ready for playback: 16-bit little-endian stereo at 44.1 kHz.
type Clip struct {
	Title string
	PCM   []byte
}

// Duration is the play length of the clip.
func (c Clip) Duration() time.Duration {
	return time.Duration(float64(len(c.PCM)) / bytesPerSec * float64(time.Second))
}

// newClip converts decoded audio to the output format. Mono is duplicated to
// both channels, extra channels are dropped, and the rate is converted with
// linear interpolation.
func newClip(title string, src pcm) Clip {
	ch := max(src.channels, 1)
	frames := len(src.samples) / ch
	if frames == 0 || src.rate <= 0 {
		return Clip{Title: title}
	}
	frame := func(i int) (l, r float64) {
		base := i * ch
		l = float64(src.samples[base])
		r = l
		if ch > 1 {
			r = float64(src.samples[base+1])
		}
		return l, r
	}

	outFrames := int(int64(frames) * sampleRate / int64(src.rate))
	out := make([]byte, outFrames*channelCount*2)
	step := float64(src.rate) / sampleRate
	for i := 0; i < outFrames; i++ {
		x := float64(i) * step
		j := int(x)
		frac := x - float64(j)
		l0, r0 := frame(min(j, frames-1))
		l1, r1 := frame(min(j+1, frames-1))
		l := l0 + (l1-l0)*frac
		r := r0 + (r1-r0)*frac
		binary.LittleEndian.PutUint16(out[i*4:], uint16(clamp16(int(math.Round(l)))))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(clamp16(int(math.Round(r)))))
	}
	return Clip{Title: title, PCM: out}
}

// Tone synthesises the built-in two-note station chime, a falling major third
// with a decaying envelope.
func Tone() Clip {
	notes := []struct {
		freq float64
		dur  time.Duration
	}{
		{freq: 659.25, dur: 350 * time.Millisecond},
		{freq: 523.25, dur: 550 * time.Millisecond},
	}
	var samples []int16
	for _, n := range notes {
		count := int(n.dur.Seconds() * sampleRate)
		for i := 0; i < count; i++ {
			t := float64(i) / sampleRate
			env := math.Exp(-4*t) * min(1, float64(i)/220)
			v := 0.35 * env * (math.Sin(2*math.Pi*n.freq*t) + 0.3*math.Sin(4*math.Pi*n.freq*t))
			s := clamp16(int(v * math.MaxInt16))
			samples = append(samples, s, s)
		}
	}
	return newClip("station chime", pcm{samples: samples, rate: sampleRate, channels: channelCount})
}
