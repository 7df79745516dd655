package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"gamehelpers/internal/logger"
)

// Bank owns a named collection of sounds and their bound sources.
type Bank struct {
	mixer  *Mixer
	sounds []*Sound
	byName map[string]*Sound
	log    *zap.Logger
}

// NewBank validates sounds, loads each clip once per distinct path, binds a
// Source to every sound and starts the PlayOnAwake ones.
func NewBank(mixer *Mixer, sounds []*Sound, load ClipLoader, log *zap.Logger) (*Bank, error) {
	log = logger.OrNop(log)
	b := &Bank{
		mixer:  mixer,
		byName: make(map[string]*Sound, len(sounds)),
		log:    log,
	}

	for _, s := range sounds {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := b.byName[s.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSound, s.Name)
		}
		b.byName[s.Name] = s
	}

	clips := make(map[string]*beep.Buffer)
	for _, s := range sounds {
		clip, ok := clips[s.Clip]
		if !ok {
			buf, err := load(s.Clip, mixer.SampleRate())
			if err != nil {
				return nil, fmt.Errorf("sound %q: %w", s.Name, err)
			}
			clip = buf
			clips[s.Clip] = clip
		}
		s.Source = newSource(s, clip, mixer.Group(s.Output))
		b.sounds = append(b.sounds, s)
	}

	for _, s := range b.sounds {
		if s.PlayOnAwake {
			s.Source.Play()
			log.Debug("play on awake", zap.String("sound", s.Name), zap.String("output", s.Output))
		}
	}
	log.Info("sound bank ready",
		zap.Int("sounds", len(b.sounds)),
		zap.Int("clips", len(clips)),
		zap.Int("groups", mixer.Groups()),
	)
	return b, nil
}

// LoadBank reads a YAML sound list from path and builds a bank from it.
func LoadBank(path string, mixer *Mixer, load ClipLoader, log *zap.Logger) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound bank: %w", err)
	}
	sounds, err := ParseSounds(data)
	if err != nil {
		return nil, err
	}
	return NewBank(mixer, sounds, load, log)
}

// Get returns the named sound, or nil.
func (b *Bank) Get(name string) *Sound {
	return b.byName[name]
}

func (b *Bank) Sounds() []*Sound {
	return b.sounds
}

func (b *Bank) Play(name string) error {
	s, ok := b.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	s.Source.Play()
	return nil
}

func (b *Bank) Stop(name string) error {
	s, ok := b.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	s.Source.Stop()
	return nil
}

// StopAll silences every source in the bank.
func (b *Bank) StopAll() {
	for _, s := range b.sounds {
		s.Source.Stop()
	}
}
