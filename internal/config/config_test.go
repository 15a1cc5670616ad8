package config

import (
	"flag"
	"testing"
	"time"
)

func TestClamped(t *testing.T) {
	cases := []struct {
		name    string
		in      Settings
		discs   int
		speed   int
		timeout time.Duration
	}{
		{"defaults", Default(), 6, 3, 0},
		{"too low", Settings{Discs: -4, Speed: 0, Timeout: -time.Second}, MinDiscs, MinSpeed, 0},
		{"too high", Settings{Discs: 40, Speed: 99, Timeout: time.Minute}, MaxDiscs, MaxSpeed, time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Clamped()
			if got.Discs != tc.discs || got.Speed != tc.speed || got.Timeout != tc.timeout {
				t.Fatalf("Clamped() = %+v", got)
			}
		})
	}
}

func TestMoveInterval(t *testing.T) {
	if got := MoveInterval(1); got != time.Second {
		t.Fatalf("speed 1: %v", got)
	}
	if got := MoveInterval(10); got != 100*time.Millisecond {
		t.Fatalf("speed 10: %v", got)
	}
	if MoveInterval(0) != MoveInterval(1) || MoveInterval(42) != MoveInterval(10) {
		t.Fatal("out of range speeds are not clamped")
	}
}

func TestRegisterFlags(t *testing.T) {
	s := Default()
	fs := flag.NewFlagSet("hanoi", flag.ContinueOnError)
	s.RegisterFlags(fs)
	if err := fs.Parse([]string{"-discs", "4", "-speed", "8", "-sound=false", "-timeout", "30s", "-print"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Discs != 4 || s.Speed != 8 || s.Sound || s.Timeout != 30*time.Second || !s.Print {
		t.Fatalf("settings = %+v", s)
	}
	if s.LogLevel != "info" {
		t.Fatalf("log level default lost: %q", s.LogLevel)
	}
}
