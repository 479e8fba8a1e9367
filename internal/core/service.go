package core

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Rorical/roricalc/internal/engine"
	"github.com/Rorical/roricalc/internal/input"
)

// DefaultTapeSize is how many entries a session remembers.
const DefaultTapeSize = 50

// Session owns the single live calculator state. Every Press runs one action
// to completion before the next is accepted.
type Session struct {
	mu    sync.Mutex
	state input.State
	tape  *Tape
}

func NewSession() *Session {
	return &Session{
		state: input.New(),
		tape:  NewTape(DefaultTapeSize),
	}
}

// Press applies a and returns the new display. Quit is not recorded.
func (s *Session) Press(a input.Action) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.press(a)
}

func (s *Session) press(a input.Action) string {
	if a.Kind == input.KindQuit {
		return s.state.Display()
	}

	s.state = input.Step(s.state, a)
	if err := s.state.Err(); err != nil {
		log.Printf("key %s: %v", a, err)
	}
	if a.Kind == input.KindClear {
		s.tape.Clear()
	}
	s.tape.Record(Entry{
		Token:   a.String(),
		Display: s.state.Display(),
		Failed:  s.state.Err() != nil,
	})
	return s.state.Display()
}

// PressAll parses and applies tokens in order. Each argument may hold several
// space-separated tokens. Nothing is applied if any token is unknown.
func (s *Session) PressAll(tokens []string) (string, error) {
	var actions []input.Action
	for _, arg := range tokens {
		for _, tok := range strings.Fields(arg) {
			a, err := input.ParseAction(tok)
			if err != nil {
				return "", fmt.Errorf("failed to parse keys: %w", err)
			}
			actions = append(actions, a)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	display := s.state.Display()
	for _, a := range actions {
		display = s.press(a)
	}
	return display, nil
}

func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Display()
}

// Pending returns the operation waiting for its second operand.
func (s *Session) Pending() engine.Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Pending()
}

func (s *Session) Mode() input.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mode()
}

// LastError returns the error surfaced by the most recent key, or nil.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Err()
}

func (s *Session) Tape() []Entry {
	return s.tape.Entries()
}

// Reset returns the session to its power-on state and empties the tape.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = input.New()
	s.tape.Clear()
}
