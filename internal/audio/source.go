package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const resampleQuality = 4

// Source plays one Sound's clip through its output group. Each Play starts
// a fresh voice; Stop silences the current one.
type Source struct {
	sound *Sound
	clip  *beep.Buffer
	group *MixerGroup

	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	volume    *effects.Volume
	playing   atomic.Bool
}

func newSource(s *Sound, clip *beep.Buffer, group *MixerGroup) *Source {
	return &Source{sound: s, clip: clip, group: group}
}

func (src *Source) Sound() *Sound { return src.sound }

func (src *Source) Group() *MixerGroup { return src.group }

// Play starts the clip from the beginning, replacing any voice still
// playing from this source.
func (src *Source) Play() {
	src.Stop()

	var s beep.Streamer = src.clip.Streamer(0, src.clip.Len())
	if src.sound.Loop {
		s = beep.Loop(-1, src.clip.Streamer(0, src.clip.Len()))
	}
	resampler := beep.ResampleRatio(resampleQuality, float64(clampPitch(src.sound.Pitch)), s)
	volume := &effects.Volume{Streamer: resampler, Base: 2}
	setLinearVolume(volume, clampVolume(src.sound.Volume))

	done := beep.Callback(func() { src.playing.Store(false) })
	ctrl := &beep.Ctrl{Streamer: beep.Seq(volume, done)}

	src.group.owner.lock()
	src.ctrl, src.resampler, src.volume = ctrl, resampler, volume
	src.playing.Store(true)
	src.group.owner.unlock()

	src.group.add(ctrl)
}

// Stop ends the current voice. The group drops it on its next read.
func (src *Source) Stop() {
	src.group.owner.lock()
	defer src.group.owner.unlock()
	if src.ctrl != nil {
		src.ctrl.Streamer = nil
		src.ctrl = nil
	}
	src.playing.Store(false)
}

// Pause toggles the current voice without losing its position.
func (src *Source) Pause(paused bool) {
	src.group.owner.lock()
	defer src.group.owner.unlock()
	if src.ctrl != nil {
		src.ctrl.Paused = paused
	}
}

func (src *Source) IsPlaying() bool {
	return src.playing.Load()
}

// SetVolume updates the sound's volume, live if playing.
func (src *Source) SetVolume(v float32) {
	src.group.owner.lock()
	defer src.group.owner.unlock()
	src.sound.Volume = clampVolume(v)
	if src.volume != nil {
		setLinearVolume(src.volume, src.sound.Volume)
	}
}

// SetPitch updates the playback rate ratio, live if playing.
func (src *Source) SetPitch(p float32) {
	src.group.owner.lock()
	defer src.group.owner.unlock()
	src.sound.Pitch = clampPitch(p)
	if src.resampler != nil {
		src.resampler.SetRatio(float64(src.sound.Pitch))
	}
}
