package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
)

// Device plays a Mixer's master stream on the system speaker.
type Device struct {
	mixer *Mixer
}

// OpenDevice initializes the speaker with the given latency and starts
// playing m. Only one device may be open per process.
func OpenDevice(m *Mixer, latency time.Duration) (*Device, error) {
	rate := m.SampleRate()
	if err := speaker.Init(rate, rate.N(latency)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	m.setLocker(speaker.Lock, speaker.Unlock)
	speaker.Play(m.Streamer())
	return &Device{mixer: m}, nil
}

// Close stops output and releases the speaker.
func (d *Device) Close() {
	speaker.Clear()
	d.mixer.setLocker(func() {}, func() {})
	speaker.Close()
}
