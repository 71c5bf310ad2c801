package chime

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestToneIsStereo441(t *testing.T) {
	c := Tone()
	if c.Title != "station chime" {
		t.Fatalf("unexpected title %q", c.Title)
	}
	if got := c.Duration(); got < 890*time.Millisecond || got > 910*time.Millisecond {
		t.Fatalf("tone duration %v, want ~900ms", got)
	}
	if len(c.PCM)%4 != 0 {
		t.Fatalf("PCM length %d is not whole stereo frames", len(c.PCM))
	}
	silent := true
	for i := 0; i+1 < len(c.PCM); i += 2 {
		if binary.LittleEndian.Uint16(c.PCM[i:]) != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Fatal("tone is silent")
	}
}

func TestNewClipUpmixesAndResamples(t *testing.T) {
	src := pcm{samples: []int16{0, 1000, 2000, 3000}, rate: 22050, channels: 1}
	c := newClip("x", src)

	// 4 mono frames at 22.05 kHz become 8 stereo frames at 44.1 kHz.
	if len(c.PCM) != 8*4 {
		t.Fatalf("PCM length %d, want 32", len(c.PCM))
	}
	sample := func(frame, ch int) int16 {
		return int16(binary.LittleEndian.Uint16(c.PCM[frame*4+ch*2:]))
	}
	want := []int16{0, 500, 1000, 1500, 2000, 2500, 3000, 3000}
	for i, w := range want {
		if l, r := sample(i, 0), sample(i, 1); l != w || r != w {
			t.Fatalf("frame %d = (%d,%d), want %d on both channels", i, l, r, w)
		}
	}
}

func TestNewClipEmpty(t *testing.T) {
	c := newClip("empty", pcm{rate: 44100, channels: 2})
	if len(c.PCM) != 0 || c.Duration() != 0 {
		t.Fatalf("expected empty clip, got %d bytes", len(c.PCM))
	}
}

func TestLoadWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.wav")
	samples := []int16{0, 1200, -1200, 32767, -32768, 0}
	if err := os.WriteFile(path, wavFile(samples, 44100, 2), 0o644); err != nil {
		t.Fatalf("write wav: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Title != "bell" {
		t.Fatalf("title %q, want bell", c.Title)
	}
	if len(c.PCM) != len(samples)*2 {
		t.Fatalf("PCM length %d, want %d", len(c.PCM), len(samples)*2)
	}
	for i, want := range samples {
		if got := int16(binary.LittleEndian.Uint16(c.PCM[i*2:])); got != want {
			t.Fatalf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.aiff")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported chime format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestLoadRejectsCorruptWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("definitely not riff"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt wav")
	}
}

// wavFile builds a canonical 16-bit PCM RIFF file.
func wavFile(samples []int16, rate, channels int) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	var b []byte
	put32 := func(v uint32) { b = binary.LittleEndian.AppendUint32(b, v) }
	put16 := func(v uint16) { b = binary.LittleEndian.AppendUint16(b, v) }

	b = append(b, "RIFF"...)
	put32(uint32(36 + len(data)))
	b = append(b, "WAVE"...)
	b = append(b, "fmt "...)
	put32(16)
	put16(1)
	put16(uint16(channels))
	put32(uint32(rate))
	put32(uint32(rate * channels * 2))
	put16(uint16(channels * 2))
	put16(16)
	b = append(b, "data"...)
	put32(uint32(len(data)))
	return append(b, data...)
}
