// Package convomesh provides a high-level façade over the conversation
// engine and its supporting packages for generating synthetic multi-party
// dialogues. Most applications interact with this package by:
//  1. Loading or generating a conversation input record (convio.ConvData)
//  2. Picking a model backend (model/openai, model/anthropic, model.MockModel)
//  3. Calling GenerateConversation to run the full dialogue
//
// The façade delegates orchestration to conversation.Engine while keeping
// setup and usage ergonomics concise. Callers needing finer control (custom
// speakers, pre-built selectors, inspection of the context window) use the
// conversation and turn packages directly.
package convomesh

import (
	"context"

	"github.com/hupe1980/convomesh/conversation"
	"github.com/hupe1980/convomesh/convio"
	"github.com/hupe1980/convomesh/logging"
	"github.com/hupe1980/convomesh/model"
)

// Options configures conversation generation through the façade.
type Options struct {
	// ModeratorModel backs the moderator speaker when the input names one.
	// Defaults to the user model.
	ModeratorModel model.Model

	// Logger receives selector diagnostics and, when Verbose is set, every
	// produced utterance.
	Logger logging.Logger

	// Verbose emits each new utterance to the logger as the run progresses.
	Verbose bool
}

// GenerateConversation builds and runs the conversation described by the
// input record and returns the complete transcript. Any construction or
// generation failure aborts the run and surfaces to the caller; no partial
// transcript is returned.
func GenerateConversation(
	ctx context.Context,
	data *convio.ConvData,
	userModel model.Model,
	optFns ...func(o *Options),
) ([]conversation.Utterance, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	moderatorModel := opts.ModeratorModel
	if moderatorModel == nil {
		moderatorModel = userModel
	}

	gen, err := convio.NewGenerator(data, userModel, func(o *convio.GeneratorOptions) {
		o.ModeratorModel = moderatorModel
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}

	engine, err := gen.Conversation()
	if err != nil {
		return nil, err
	}

	if err := engine.Run(ctx, opts.Verbose); err != nil {
		return nil, err
	}

	return engine.Transcript(), nil
}
