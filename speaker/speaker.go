// Package speaker provides the model-backed implementation of the
// conversation.Speaker capability. An LLMSpeaker renders its persona (name,
// role, attributes, chat context and shared instructions) into a system
// prompt and hands the current context window to a model.Model to produce
// one utterance.
package speaker

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/convomesh/model"
)

// Default roles used for regular participants and the moderator.
const (
	RoleChatUser      = "chat user"
	RoleChatModerator = "chat moderator"
)

// Options configures an LLMSpeaker instance.
//
// Use functional options with NewLLMSpeaker to override defaults.
type Options struct {
	// Role describes the speaker's function in the chat (user, moderator).
	Role string
	// Attributes are static persona traits woven into the system prompt.
	Attributes []string
	// Context is the shared free-text topic or scene description.
	Context string
	// Instructions are the shared behavioral instructions.
	Instructions string
}

// LLMSpeaker produces utterances by invoking a generative model with a
// persona-derived system prompt and the current conversation window.
type LLMSpeaker struct {
	name         string
	role         string
	attributes   []string
	context      string
	instructions string
	llm          model.Model
}

// NewLLMSpeaker creates a speaker with the given unique name backed by the
// given model.
func NewLLMSpeaker(name string, llm model.Model, optFns ...func(o *Options)) *LLMSpeaker {
	opts := Options{
		Role: RoleChatUser,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &LLMSpeaker{
		name:         name,
		role:         opts.Role,
		attributes:   append([]string{}, opts.Attributes...),
		context:      opts.Context,
		instructions: opts.Instructions,
		llm:          llm,
	}
}

// Name returns the speaker's unique username.
func (s *LLMSpeaker) Name() string { return s.name }

// Role returns the speaker's chat role.
func (s *LLMSpeaker) Role() string { return s.role }

// ModelID returns the opaque identifier of the backing model.
func (s *LLMSpeaker) ModelID() string { return s.llm.Info().Name }

// Speak produces one utterance conditioned on the joined context window. May
// block for the duration of the model call; failures propagate unchanged.
func (s *LLMSpeaker) Speak(ctx context.Context, window string) (string, error) {
	prompt := window
	if prompt == "" {
		prompt = "Start the conversation."
	}

	req := model.Request{
		Instructions: s.systemPrompt(),
		Messages:     []model.Message{{Role: "user", Text: prompt}},
	}

	respCh, errCh := s.llm.Generate(ctx, req)

	var text string
	for respCh != nil || errCh != nil {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if !resp.Partial {
				text = resp.Text
			}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return "", err
			}
		}
	}

	return strings.TrimSpace(text), nil
}

// systemPrompt assembles the persona description the model speaks as.
func (s *LLMSpeaker) systemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a %s.", s.name, s.role)
	if len(s.attributes) > 0 {
		fmt.Fprintf(&b, " Your characteristics: %s.", strings.Join(s.attributes, ", "))
	}
	if s.context != "" {
		b.WriteString("\n")
		b.WriteString(s.context)
	}
	if s.instructions != "" {
		b.WriteString("\n")
		b.WriteString(s.instructions)
	}
	b.WriteString("\nRespond with a single chat message, without repeating your username.")
	return b.String()
}
