package config

import (
	"flag"
	"time"
)

const (
	WindowWidth  = 640
	WindowHeight = 320

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonY      = 260
	StartButtonX = 180
	ResetButtonX = 340

	// Board geometry
	PegSpacing   = 200
	PegHeight    = 150
	PegWidth     = 8
	BaseY        = 220
	DiscHeight   = 12
	MinDiscWidth = 30
	MaxDiscWidth = 180
	LiftY        = 40

	// Disc count and speed bounds
	MinDiscs = 1
	MaxDiscs = 10
	MinSpeed = 1
	MaxSpeed = 10

	// Tone played per move
	ToneLength  = 60 * time.Millisecond
	ToneBaseHz  = 220.0
	ToneStepHz  = 55.0
	ToneVolume  = 0.2
	SampleRate  = 44100
	SpeakerBuff = 50 * time.Millisecond
)

// Settings are the user-adjustable parameters.
type Settings struct {
	Discs    int
	Speed    int
	Sound    bool
	Timeout  time.Duration // 0 disables the run limit
	LogLevel string
	Print    bool // print the move list and exit
}

func Default() Settings {
	return Settings{
		Discs:    6,
		Speed:    3,
		Sound:    true,
		LogLevel: "info",
	}
}

// RegisterFlags binds the settings to fs, using the current values as defaults.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Discs, "discs", s.Discs, "number of discs (1-10)")
	fs.IntVar(&s.Speed, "speed", s.Speed, "animation speed (1-10)")
	fs.BoolVar(&s.Sound, "sound", s.Sound, "play a tone on every move")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "stop a run after this long (0 = never)")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "debug|info|warn|error")
	fs.BoolVar(&s.Print, "print", s.Print, "print the moves for -discs and exit")
}

// Clamped returns s with disc count and speed forced into range.
func (s Settings) Clamped() Settings {
	s.Discs = ClampDiscs(s.Discs)
	s.Speed = ClampSpeed(s.Speed)
	if s.Timeout < 0 {
		s.Timeout = 0
	}
	return s
}

func ClampDiscs(n int) int { return min(max(n, MinDiscs), MaxDiscs) }
func ClampSpeed(n int) int { return min(max(n, MinSpeed), MaxSpeed) }

// MoveInterval is how long one move takes at the given speed: 1s at speed 1
// down to 100ms at speed 10.
func MoveInterval(speed int) time.Duration {
	return time.Duration(MaxSpeed+1-ClampSpeed(speed)) * 100 * time.Millisecond
}
