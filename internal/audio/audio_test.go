package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// constStreamer emits n stereo frames of value v.
type constStreamer struct {
	n int
	v float64
}

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.n <= 0 {
		return 0, false
	}
	k := min(len(samples), c.n)
	for i := 0; i < k; i++ {
		samples[i] = [2]float64{c.v, c.v}
	}
	c.n -= k
	return k, true
}

func (c *constStreamer) Err() error { return nil }

type fakeLoader struct {
	calls map[string]int
}

func (f *fakeLoader) load(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[path]++
	if path == "missing.wav" {
		return nil, errors.New("no such clip")
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(&constStreamer{n: 100, v: 0.5})
	return buf, nil
}

func peak(m *Mixer, frames int) float64 {
	samples := make([][2]float64, frames)
	m.Streamer().Stream(samples)
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestParseSoundsDefaults(t *testing.T) {
	data := []byte(`
sounds:
  - name: jump
    clip: jump.wav
    output: sfx
  - name: music
    clip: theme.wav
    output: music
    volume: 0.4
    pitch: 1.5
    loop: true
    playOnAwake: true
`)
	sounds, err := ParseSounds(data)
	if err != nil {
		t.Fatalf("ParseSounds failed: %v", err)
	}
	if len(sounds) != 2 {
		t.Fatalf("Expected 2 sounds, got %d", len(sounds))
	}

	jump := sounds[0]
	if jump.Volume != 1 || jump.Pitch != 1 {
		t.Errorf("Expected default volume and pitch of 1, got %v/%v", jump.Volume, jump.Pitch)
	}
	if jump.Loop || jump.PlayOnAwake {
		t.Error("Loop and PlayOnAwake should default to false")
	}

	music := sounds[1]
	if music.Volume != 0.4 || music.Pitch != 1.5 || !music.Loop || !music.PlayOnAwake {
		t.Errorf("Unexpected music descriptor %+v", music)
	}
	if music.Source != nil {
		t.Error("Source must not be decoded from YAML")
	}
}

func TestSoundValidate(t *testing.T) {
	tests := []struct {
		name  string
		sound Sound
		ok    bool
	}{
		{"valid", Sound{Name: "a", Volume: 0.5, Pitch: 1}, true},
		{"bounds", Sound{Name: "a", Volume: 1, Pitch: MaxPitch}, true},
		{"no name", Sound{Volume: 1, Pitch: 1}, false},
		{"loud", Sound{Name: "a", Volume: 1.1, Pitch: 1}, false},
		{"low pitch", Sound{Name: "a", Volume: 1, Pitch: 0.05}, false},
		{"high pitch", Sound{Name: "a", Volume: 1, Pitch: 3.5}, false},
		{"nan volume", Sound{Name: "a", Volume: float32(math.NaN()), Pitch: 1}, false},
		{"nan pitch", Sound{Name: "a", Volume: 1, Pitch: float32(math.NaN())}, false},
		{"inf volume", Sound{Name: "a", Volume: float32(math.Inf(1)), Pitch: 1}, false},
		{"-inf pitch", Sound{Name: "a", Volume: 1, Pitch: float32(math.Inf(-1))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sound.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSound) {
				t.Errorf("Expected ErrInvalidSound, got %v", err)
			}
		})
	}
}

func TestSoundClamp(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name          string
		volume, pitch float32
		wantV, wantP  float32
	}{
		{"over and under", 2, 0, 1, MinPitch},
		{"nan", nan, nan, 1, 1},
		{"inf", inf, inf, 1, MaxPitch},
		{"-inf", -inf, -inf, 0, MinPitch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sound{Name: "a", Volume: tt.volume, Pitch: tt.pitch}
			s.Clamp()
			if s.Volume != tt.wantV || s.Pitch != tt.wantP {
				t.Errorf("Expected %v/%v, got %v/%v", tt.wantV, tt.wantP, s.Volume, s.Pitch)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Clamped sound should validate, got %v", err)
			}
		})
	}
}

func TestParseSoundsNaNRejected(t *testing.T) {
	sounds, err := ParseSounds([]byte("sounds:\n  - name: hum\n    clip: hum.wav\n    volume: .nan\n    pitch: .nan\n    playOnAwake: true\n"))
	if err != nil {
		t.Fatalf("ParseSounds failed: %v", err)
	}
	if err := sounds[0].Validate(); !errors.Is(err, ErrInvalidSound) {
		t.Errorf("Expected NaN fields to fail validation, got %v", err)
	}

	loader := &fakeLoader{}
	if _, err := NewBank(NewMixer(DefaultSampleRate), sounds, loader.load, nil); !errors.Is(err, ErrInvalidSound) {
		t.Errorf("Expected bank to reject NaN sound, got %v", err)
	}
}

func TestNewBankRejectsDuplicates(t *testing.T) {
	loader := &fakeLoader{}
	_, err := NewBank(NewMixer(DefaultSampleRate), []*Sound{
		NewSound("hit", "a.wav"),
		NewSound("hit", "b.wav"),
	}, loader.load, nil)
	if !errors.Is(err, ErrDuplicateSound) {
		t.Errorf("Expected ErrDuplicateSound, got %v", err)
	}
}

func TestNewBankClipError(t *testing.T) {
	loader := &fakeLoader{}
	_, err := NewBank(NewMixer(DefaultSampleRate), []*Sound{NewSound("x", "missing.wav")}, loader.load, nil)
	if err == nil {
		t.Error("Expected clip load error")
	}
}

func TestNewBankBindsSources(t *testing.T) {
	loader := &fakeLoader{}
	hit := NewSound("hit", "shared.wav")
	hit.Output = "sfx"
	step := NewSound("step", "shared.wav")
	step.Output = "sfx"
	theme := NewSound("theme", "theme.wav")
	theme.Output = "music"

	mixer := NewMixer(DefaultSampleRate)
	bank, err := NewBank(mixer, []*Sound{hit, step, theme}, loader.load, nil)
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	if loader.calls["shared.wav"] != 1 {
		t.Errorf("Shared clip should load once, loaded %d times", loader.calls["shared.wav"])
	}
	if mixer.Groups() != 2 {
		t.Errorf("Expected 2 groups, got %d", mixer.Groups())
	}
	for _, s := range bank.Sounds() {
		if s.Source == nil {
			t.Fatalf("%s has no bound source", s.Name)
		}
		if s.Source.Group().Name() != s.Output {
			t.Errorf("%s routed to %q, expected %q", s.Name, s.Source.Group().Name(), s.Output)
		}
	}
	if bank.Get("hit") != hit {
		t.Error("Get should return the registered sound")
	}
	if err := bank.Play("nope"); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}

func TestPlayOnAwakeAndDrain(t *testing.T) {
	loader := &fakeLoader{}
	s := NewSound("ping", "ping.wav")
	s.PlayOnAwake = true

	mixer := NewMixer(DefaultSampleRate)
	if _, err := NewBank(mixer, []*Sound{s}, loader.load, nil); err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	if !s.Source.IsPlaying() {
		t.Fatal("PlayOnAwake sound should be playing")
	}
	if p := peak(mixer, 512); p < 0.1 {
		t.Errorf("Expected audible output, peak=%f", p)
	}
	// The 100-frame clip is exhausted after one 512-frame read.
	peak(mixer, 512)
	if s.Source.IsPlaying() {
		t.Error("Source should report stopped once its clip drained")
	}
	if s.Source.Group().Active() != 0 {
		t.Errorf("Drained voice should leave the group, %d active", s.Source.Group().Active())
	}
}

func TestStopRemovesVoice(t *testing.T) {
	loader := &fakeLoader{}
	s := NewSound("loop", "loop.wav")
	s.Loop = true

	mixer := NewMixer(DefaultSampleRate)
	bank, err := NewBank(mixer, []*Sound{s}, loader.load, nil)
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	if err := bank.Play("loop"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	peak(mixer, 1024)
	if !s.Source.IsPlaying() {
		t.Fatal("Looping source should still be playing")
	}

	if err := bank.Stop("loop"); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if s.Source.IsPlaying() {
		t.Error("Stopped source should not report playing")
	}
	peak(mixer, 64)
	if s.Source.Group().Active() != 0 {
		t.Errorf("Stopped voice should leave the group, %d active", s.Source.Group().Active())
	}
}

func TestGroupVolumeSilences(t *testing.T) {
	loader := &fakeLoader{}
	s := NewSound("loop", "loop.wav")
	s.Loop = true
	s.Output = "sfx"

	mixer := NewMixer(DefaultSampleRate)
	if _, err := NewBank(mixer, []*Sound{s}, loader.load, nil); err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	s.Source.Play()

	mixer.Group("sfx").SetVolume(0)
	if p := peak(mixer, 256); p != 0 {
		t.Errorf("Muted group should output silence, peak=%f", p)
	}

	mixer.Group("sfx").SetVolume(1)
	if p := peak(mixer, 256); p < 0.1 {
		t.Errorf("Unmuted group should be audible, peak=%f", p)
	}

	mixer.Group("sfx").SetVolume(float32(math.NaN()))
	if v := mixer.Group("sfx").Volume(); v != 1 {
		t.Errorf("NaN group volume should reset to 1, got %v", v)
	}
	if p := peak(mixer, 256); math.IsNaN(p) || p < 0.1 {
		t.Errorf("Group should stay audible after NaN volume, peak=%f", p)
	}
}

func TestSourceSetters(t *testing.T) {
	loader := &fakeLoader{}
	s := NewSound("a", "a.wav")
	mixer := NewMixer(DefaultSampleRate)
	if _, err := NewBank(mixer, []*Sound{s}, loader.load, nil); err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	s.Source.SetVolume(3)
	s.Source.SetPitch(10)
	if s.Volume != 1 || s.Pitch != MaxPitch {
		t.Errorf("Setters should clamp into range, got %v/%v", s.Volume, s.Pitch)
	}

	s.Source.Play()
	nan := float32(math.NaN())
	s.Source.SetPitch(nan)
	s.Source.SetVolume(nan)
	if s.Volume != 1 || s.Pitch != 1 {
		t.Errorf("NaN should reset to 1/1, got %v/%v", s.Volume, s.Pitch)
	}
	s.Source.Stop()
}
