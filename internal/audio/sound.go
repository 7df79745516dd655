package audio

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	MinPitch = 0.1
	MaxPitch = 3
)

var (
	ErrInvalidSound   = errors.New("invalid sound")
	ErrDuplicateSound = errors.New("duplicate sound name")
	ErrUnknownSound   = errors.New("unknown sound")
)

// Sound describes one playable cue. Source is bound at runtime by a Bank
// and is never serialized.
type Sound struct {
	Name        string  `yaml:"name"`
	Clip        string  `yaml:"clip"`
	Output      string  `yaml:"output"`
	Volume      float32 `yaml:"volume"`
	Pitch       float32 `yaml:"pitch"`
	Loop        bool    `yaml:"loop"`
	PlayOnAwake bool    `yaml:"playOnAwake"`

	Source *Source `yaml:"-"`
}

func NewSound(name, clip string) *Sound {
	return &Sound{Name: name, Clip: clip, Volume: 1, Pitch: 1}
}

// UnmarshalYAML fills unspecified volume and pitch with 1.
func (s *Sound) UnmarshalYAML(value *yaml.Node) error {
	type plain Sound
	p := plain{Volume: 1, Pitch: 1}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Sound(p)
	return nil
}

// Validate reports the first field outside its allowed range.
func (s *Sound) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidSound)
	case !(s.Volume >= 0 && s.Volume <= 1):
		return fmt.Errorf("%w: %q volume %v outside [0, 1]", ErrInvalidSound, s.Name, s.Volume)
	case !(s.Pitch >= MinPitch && s.Pitch <= MaxPitch):
		return fmt.Errorf("%w: %q pitch %v outside [%v, %v]", ErrInvalidSound, s.Name, s.Pitch, MinPitch, MaxPitch)
	}
	return nil
}

// Clamp forces volume and pitch into range. NaN resets either to 1.
func (s *Sound) Clamp() {
	s.Volume = clampVolume(s.Volume)
	s.Pitch = clampPitch(s.Pitch)
}

func clampVolume(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 1
	}
	return min(max(v, 0), 1)
}

func clampPitch(p float32) float32 {
	if math.IsNaN(float64(p)) {
		return 1
	}
	return min(max(p, MinPitch), MaxPitch)
}

type soundFile struct {
	Sounds []*Sound `yaml:"sounds"`
}

// ParseSounds decodes a YAML document with a top-level "sounds" list.
func ParseSounds(data []byte) ([]*Sound, error) {
	var f soundFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode sounds: %w", err)
	}
	return f.Sounds, nil
}
