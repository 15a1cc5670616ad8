package game

import (
	"log/slog"
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/hanoi"
)

// tone is a decaying sine wave of fixed length.
type tone struct {
	freq  float64
	sr    beep.SampleRate
	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{freq: freq, sr: sr, total: sr.N(config.ToneLength)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := min(len(samples), t.total-t.pos)
	for i := 0; i < n; i++ {
		env := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr)) * env * config.ToneVolume
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// clicker plays a tone on every move, higher for smaller discs.
// A nil clicker is silent.
type clicker struct {
	sr    beep.SampleRate
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
	muted bool
}

func newClicker(enabled bool) (*clicker, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(config.SpeakerBuff)); err != nil {
		return nil, err
	}
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer, Paused: !enabled}
	speaker.Play(ctrl)
	return &clicker{sr: sr, mixer: mixer, ctrl: ctrl, muted: !enabled}, nil
}

func (c *clicker) Moved(ev hanoi.MoveEvent) {
	if c == nil || c.muted {
		return
	}
	freq := config.ToneBaseHz + config.ToneStepHz*float64(ev.Disc)
	speaker.Lock()
	c.mixer.Add(newTone(c.sr, freq))
	speaker.Unlock()
}

func (c *clicker) Reset(int) {
	if c == nil {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}

func (c *clicker) toggle() bool {
	if c == nil {
		return false
	}
	speaker.Lock()
	c.muted = !c.muted
	c.ctrl.Paused = c.muted
	speaker.Unlock()
	return !c.muted
}

// openSound returns a silent clicker when no audio device is available.
func openSound(enabled bool, log *slog.Logger) *clicker {
	c, err := newClicker(enabled)
	if err != nil {
		log.Warn("sound disabled", "err", err)
		return nil
	}
	return c
}
