// Package session paces a Tower of Hanoi run: it owns the tower, the UI
// state machine and the queue of planned moves, and applies one move per
// move interval as the caller advances time.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/hanoi"
)

// Source, destination and spare pegs of every run.
const (
	From  = hanoi.A
	To    = hanoi.C
	Spare = hanoi.B
)

type Session struct {
	tower   *hanoi.Tower
	state   State
	discs   int
	speed   int
	timeout time.Duration

	plan    []hanoi.Move
	next    int
	phase   time.Duration // time spent on plan[next]
	elapsed time.Duration // time since Start

	log *slog.Logger
}

func New(s config.Settings, log *slog.Logger, observers ...hanoi.Observer) *Session {
	s = s.Clamped()
	if log == nil {
		log = slog.Default()
	}
	sess := &Session{
		tower:   hanoi.NewTower(observers...),
		discs:   s.Discs,
		speed:   s.Speed,
		timeout: s.Timeout,
		log:     log,
	}
	sess.tower.Reset(sess.discs)
	return sess
}

func (s *Session) State() State { return s.state }
func (s *Session) Discs() int { return s.discs }
func (s *Session) Speed() int { return s.speed }
func (s *Session) Elapsed() time.Duration { return s.elapsed }
func (s *Session) Tower() *hanoi.Tower { return s.tower }
func (s *Session) Remaining() int { return len(s.plan) - s.next }
func (s *Session) MoveInterval() time.Duration { return config.MoveInterval(s.speed) }

func (s *Session) fire(e Event) error {
	to, err := s.state.Next(e)
	if err != nil {
		return err
	}
	s.log.Debug("state", "from", s.state, "event", e, "to", to)
	s.state = to
	return nil
}

// SetDiscs changes the disc count and resets the tower. The count is clamped
// to the allowed range.
func (s *Session) SetDiscs(n int) error {
	if !s.state.CanChangeDiscs() {
		return fmt.Errorf("change discs while %v: %w", s.state, ErrInvalidTransition)
	}
	s.discs = config.ClampDiscs(n)
	return s.reset()
}

// SetSpeed changes the pacing; it never alters the move sequence.
func (s *Session) SetSpeed(n int) {
	s.speed = config.ClampSpeed(n)
}

// Start plans the solution and begins applying it.
func (s *Session) Start() error {
	if err := s.fire(EventStart); err != nil {
		return err
	}
	s.plan = hanoi.Plan(s.discs, From, To, Spare)
	s.next = 0
	s.phase = 0
	s.elapsed = 0
	s.log.Info("run started", "discs", s.discs, "moves", len(s.plan), "speed", s.speed)
	return nil
}

// Reset puts every disc back on the source peg.
func (s *Session) Reset() error {
	return s.reset()
}

func (s *Session) reset() error {
	if err := s.fire(EventReset); err != nil {
		return err
	}
	s.plan = nil
	s.next = 0
	s.phase = 0
	s.elapsed = 0
	s.tower.Reset(s.discs)
	return nil
}

// Update advances the run by dt and returns how many moves were applied.
func (s *Session) Update(dt time.Duration) (int, error) {
	if s.state != Running || dt <= 0 {
		return 0, nil
	}
	s.elapsed += dt
	if s.timeout > 0 && s.elapsed >= s.timeout {
		s.log.Warn("run timed out", "after", s.elapsed, "moves", s.tower.Count(), "remaining", s.Remaining())
		return 0, s.fire(EventExpire)
	}

	applied := 0
	interval := s.MoveInterval()
	s.phase += dt
	for s.next < len(s.plan) && s.phase >= interval {
		m := s.plan[s.next]
		s.tower.Move(m.From, m.To)
		s.next++
		s.phase -= interval
		applied++
	}
	if s.next >= len(s.plan) {
		s.phase = 0
		s.log.Info("run finished", "moves", s.tower.Count(), "elapsed", s.elapsed)
		return applied, s.fire(EventFinish)
	}
	return applied, nil
}

// InFlight returns the move being animated and how far along it is (0..1).
func (s *Session) InFlight() (hanoi.Move, float64, bool) {
	if s.state != Running || s.next >= len(s.plan) {
		return hanoi.Move{}, 0, false
	}
	p := float64(s.phase) / float64(s.MoveInterval())
	return s.plan[s.next], min(max(p, 0), 1), true
}

// WriteSolution writes the numbered moves for n discs to w, one per line.
func WriteSolution(w io.Writer, n int) error {
	var err error
	count := 0
	hanoi.Solve(n, From, To, Spare, hanoi.MoverFunc(func(src, dst hanoi.Peg) {
		if err != nil {
			return
		}
		count++
		_, err = fmt.Fprintf(w, "%d: %v -> %v\n", count, src, dst)
	}))
	return err
}
