package chime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// pcm is decoded interleaved 16-bit audio at its source rate.
type pcm struct {
	samples  []int16
	rate     int
	channels int
}

// Load decodes the chime file at path into a playable Clip. The format is
// picked by extension.
func Load(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, err
	}
	defer f.Close()

	var src pcm
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		src, err = decodeWAV(f)
	case ".mp3":
		src, err = decodeMP3(f)
	case ".ogg":
		src, err = decodeOGG(f)
	case ".flac":
		src, err = decodeFLAC(f)
	default:
		return Clip{}, fmt.Errorf("unsupported chime format %s (supported: %s)", ext, SupportedExtsList())
	}
	if err != nil {
		return Clip{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if len(src.samples) == 0 {
		return Clip{}, fmt.Errorf("decoding %s: no audio", filepath.Base(path))
	}
	return newClip(title(path), src), nil
}

// SupportedExtsList returns the chime formats Load accepts.
func SupportedExtsList() string {
	return ".wav, .mp3, .ogg, .flac"
}

// title prefers the ID3 title of MP3 files and falls back to the file name.
func title(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			if t := strings.TrimSpace(tag.Title()); t != "" {
				return t
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func decodeWAV(r io.ReadSeeker) (pcm, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return pcm{}, errors.New("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcm{}, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	depth := int(dec.BitDepth)
	out := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		switch {
		case depth == 8:
			// 8-bit WAV is unsigned.
			s = (s - 128) << 8
		case depth > 16:
			s >>= depth - 16
		}
		out[i] = clamp16(s)
	}
	return pcm{samples: out, rate: int(dec.SampleRate), channels: int(dec.NumChans)}, nil
}

func decodeMP3(r io.Reader) (pcm, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return pcm{}, err
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return pcm{}, err
	}
	// go-mp3 always yields 16-bit little-endian stereo.
	out := make([]int16, len(raw)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return pcm{samples: out, rate: dec.SampleRate(), channels: 2}, nil
}

func decodeOGG(r io.Reader) (pcm, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return pcm{}, err
	}
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = clamp16(int(math.Round(float64(max(-1, min(1, s))) * 32767)))
	}
	return pcm{samples: out, rate: format.SampleRate, channels: format.Channels}, nil
}

func decodeFLAC(r io.Reader) (pcm, error) {
	stream, err := flac.New(r)
	if err != nil {
		return pcm{}, err
	}
	defer stream.Close()

	channels := int(stream.Info.NChannels)
	bps := int(stream.Info.BitsPerSample)
	var out []int16
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return pcm{}, err
		}
		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				s := int(frame.Subframes[ch].Samples[i])
				switch {
				case bps > 16:
					s >>= bps - 16
				case bps < 16:
					s <<= 16 - bps
				}
				out = append(out, clamp16(s))
			}
		}
	}
	return pcm{samples: out, rate: int(stream.Info.SampleRate), channels: channels}, nil
}

func clamp16(s int) int16 {
	if s > math.MaxInt16 {
		return math.MaxInt16
	}
	if s < math.MinInt16 {
		return math.MinInt16
	}
	return int16(s)
}
