package convio

import (
	"fmt"

	"github.com/hupe1980/convomesh/conversation"
	"github.com/hupe1980/convomesh/logging"
	"github.com/hupe1980/convomesh/model"
	"github.com/hupe1980/convomesh/speaker"
	"github.com/hupe1980/convomesh/turn"
)

// GeneratorOptions configures a Generator instance.
//
// Use functional options with NewGenerator to override defaults.
type GeneratorOptions struct {
	// ModeratorModel backs the moderator speaker. Required when the data
	// names a moderator; may differ from the user model.
	ModeratorModel model.Model

	// Logger is passed through to the selector and engine.
	Logger logging.Logger
}

// Generator assembles a conversation.Engine from a ConvData record and model
// backends.
type Generator struct {
	data           *ConvData
	userModel      model.Model
	moderatorModel model.Model
	logger         logging.Logger
}

// NewGenerator creates a generator. The user model is required; a moderator
// model is required exactly when the data names a moderator.
func NewGenerator(data *ConvData, userModel model.Model, optFns ...func(o *GeneratorOptions)) (*Generator, error) {
	opts := GeneratorOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if data == nil {
		return nil, fmt.Errorf("conversation data is required")
	}
	if userModel == nil {
		return nil, fmt.Errorf("user model is required")
	}
	if data.ModeratorName != "" && opts.ModeratorModel == nil {
		return nil, fmt.Errorf("moderator %q was not given a model", data.ModeratorName)
	}

	return &Generator{
		data:           data,
		userModel:      userModel,
		moderatorModel: opts.ModeratorModel,
		logger:         opts.Logger,
	}, nil
}

// Conversation builds the turn selector, the speakers and the engine
// described by the data record. The returned engine is ready to Run.
func (g *Generator) Conversation() (*conversation.Engine, error) {
	selector, err := turn.New(g.data.SelectorType, g.data.SelectorConfig, func(o *turn.RandomWeightedOptions) {
		o.Logger = g.logger
	})
	if err != nil {
		return nil, err
	}

	speakers := make([]conversation.Speaker, 0, len(g.data.UserNames))
	for i, name := range g.data.UserNames {
		attrs := g.data.UserAttributes[i]
		speakers = append(speakers, speaker.NewLLMSpeaker(name, g.userModel, func(o *speaker.Options) {
			o.Role = speaker.RoleChatUser
			o.Attributes = attrs
			o.Context = g.data.Context
			o.Instructions = g.data.UserInstructions
		}))
	}

	return conversation.NewEngine(selector, speakers, func(o *conversation.Options) {
		if g.data.ModeratorName != "" {
			o.Moderator = speaker.NewLLMSpeaker(g.data.ModeratorName, g.moderatorModel, func(so *speaker.Options) {
				so.Role = speaker.RoleChatModerator
				so.Attributes = g.data.ModeratorAttributes
				so.Context = g.data.Context
				so.Instructions = g.data.ModeratorInstructions
			})
		}
		o.SeedOpinions = g.data.SeedOpinions
		o.SeedOpinionUsers = g.data.SeedOpinionUsers
		o.TurnCount = g.data.ConvLen
		o.WindowCapacity = g.data.HistoryCtxLen
		o.Logger = g.logger
	})
}
