package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ClipLoader decodes the clip at path into a buffer at the given rate.
type ClipLoader func(path string, rate beep.SampleRate) (*beep.Buffer, error)

// LoadWAV decodes a WAV file fully into memory, resampling to rate.
func LoadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode clip %s: %w", path, err)
	}
	defer streamer.Close()

	return bufferAt(streamer, format, rate), nil
}

// bufferAt drains s into a stereo buffer at rate.
func bufferAt(s beep.Streamer, format beep.Format, rate beep.SampleRate) *beep.Buffer {
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	format.SampleRate = rate
	format.NumChannels = 2
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}
