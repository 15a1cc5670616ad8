package session

import (
	"errors"
	"fmt"
)

// State controls which controls are live.
type State int

const (
	Start State = iota
	Running
	Done
	Timeout
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Running:
		return "running"
	case Done:
		return "done"
	case Timeout:
		return "timeout"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event drives a State transition.
type Event int

const (
	EventStart Event = iota
	EventFinish
	EventExpire
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFinish:
		return "finish"
	case EventExpire:
		return "expire"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

var ErrInvalidTransition = errors.New("invalid transition")

var transitions = map[State]map[Event]State{
	Start:   {EventStart: Running, EventReset: Start},
	Running: {EventFinish: Done, EventExpire: Timeout},
	Done:    {EventReset: Start},
	Timeout: {EventReset: Start},
}

// Next returns the state reached from s on e.
func (s State) Next(e Event) (State, error) {
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%v on %v: %w", e, s, ErrInvalidTransition)
}

func (s State) CanStart() bool { return s == Start }
func (s State) CanReset() bool { return s == Done || s == Timeout }
func (s State) CanChangeDiscs() bool { return s == Start || s == Done }
