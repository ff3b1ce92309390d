// Package testutil contains helper stubs used across tests to reduce
// boilerplate when constructing conversation participants and scripted turn
// orders. These helpers are intentionally minimal and avoid adding
// third-party dependencies. They are not intended for production usage.
package testutil

import (
	"context"
	"fmt"
)

// StubSpeaker is a deterministic conversation.Speaker implementation. Speak
// returns "<name> says hi" unless a custom SpeakFunc is provided.
type StubSpeaker struct {
	SpeakerName string
	Model       string
	SpeakFunc   func(ctx context.Context, window string) (string, error)
}

// NewStubSpeaker creates a stub with the default deterministic output.
func NewStubSpeaker(name string) *StubSpeaker {
	return &StubSpeaker{SpeakerName: name, Model: "stub-model"}
}

// Name implements conversation.Speaker.
func (s *StubSpeaker) Name() string { return s.SpeakerName }

// ModelID implements conversation.Speaker.
func (s *StubSpeaker) ModelID() string { return s.Model }

// Speak implements conversation.Speaker.
func (s *StubSpeaker) Speak(ctx context.Context, window string) (string, error) {
	if s.SpeakFunc != nil {
		return s.SpeakFunc(ctx, window)
	}
	return fmt.Sprintf("%s says hi", s.SpeakerName), nil
}

// ScriptedSelector replays a fixed username sequence, wrapping around when
// exhausted. Initialize records the provided name set for inspection.
type ScriptedSelector struct {
	Sequence    []string
	Initialized []string
	next        int
}

// Initialize implements turn.Selector.
func (s *ScriptedSelector) Initialize(usernames []string) error {
	s.Initialized = append([]string{}, usernames...)
	return nil
}

// Next implements turn.Selector.
func (s *ScriptedSelector) Next() (string, error) {
	if len(s.Sequence) == 0 {
		return "", fmt.Errorf("scripted selector has no sequence")
	}
	name := s.Sequence[s.next%len(s.Sequence)]
	s.next++
	return name, nil
}
