package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultSampleRate is the rate clips are resampled to on load.
const DefaultSampleRate = beep.SampleRate(44100)

// Mixer routes sources through named groups into one master stream.
// Mutations take the device lock once a Device plays the master stream.
type Mixer struct {
	sampleRate beep.SampleRate
	master     *beep.Mixer
	groups     map[string]*MixerGroup
	lock       func()
	unlock     func()
}

func NewMixer(sampleRate beep.SampleRate) *Mixer {
	return &Mixer{
		sampleRate: sampleRate,
		master:     &beep.Mixer{},
		groups:     make(map[string]*MixerGroup),
		lock:       func() {},
		unlock:     func() {},
	}
}

func (m *Mixer) SampleRate() beep.SampleRate { return m.sampleRate }

// Streamer returns the master output.
func (m *Mixer) Streamer() beep.Streamer { return m.master }

// Group returns the named output group, creating it at full volume on first
// use. The empty name is the master group.
func (m *Mixer) Group(name string) *MixerGroup {
	if g, ok := m.groups[name]; ok {
		return g
	}
	g := &MixerGroup{name: name, mixer: &beep.Mixer{}, level: 1, owner: m}
	g.volume = &effects.Volume{Streamer: g.mixer, Base: 2}
	m.groups[name] = g

	m.lock()
	m.master.Add(g.volume)
	m.unlock()
	return g
}

// Groups returns the number of groups created so far.
func (m *Mixer) Groups() int { return len(m.groups) }

func (m *Mixer) setLocker(lock, unlock func()) {
	m.lock, m.unlock = lock, unlock
}

// MixerGroup is an output route with its own volume.
type MixerGroup struct {
	name   string
	mixer  *beep.Mixer
	volume *effects.Volume
	level  float32
	owner  *Mixer
}

func (g *MixerGroup) Name() string { return g.name }

func (g *MixerGroup) Volume() float32 { return g.level }

// SetVolume sets the linear group volume (0 silences). NaN resets it to 1.
func (g *MixerGroup) SetVolume(v float32) {
	if math.IsNaN(float64(v)) {
		v = 1
	}
	g.owner.lock()
	defer g.owner.unlock()
	g.level = v
	setLinearVolume(g.volume, v)
}

// Active returns the number of streams currently playing in the group.
func (g *MixerGroup) Active() int {
	g.owner.lock()
	defer g.owner.unlock()
	return g.mixer.Len()
}

func (g *MixerGroup) add(s beep.Streamer) {
	g.owner.lock()
	g.mixer.Add(s)
	g.owner.unlock()
}

// setLinearVolume maps a linear gain onto beep's exponential volume.
func setLinearVolume(v *effects.Volume, linear float32) {
	if !(linear > 0) {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(float64(linear))
}
