package convio

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/convomesh/persona"
)

// CtxPreface prefixes the randomly drawn topic in generated conversation
// contexts.
const CtxPreface = "You are a human participating in an online chatroom. You see the following post on a social media site:"

// DefaultModeratorAttributes describes the moderator persona in generated
// configurations.
var DefaultModeratorAttributes = []string{"just", "strict", "understanding"}

// GenerationSettings controls how GenerateConvData samples a conversation
// configuration from the persona and topic pools.
type GenerationSettings struct {
	// SelectorType and SelectorConfig are copied to the generated record.
	SelectorType   string
	SelectorConfig map[string]float64

	// ConvLen and HistoryCtxLen are copied to the generated record; zero
	// values fall back to the ConvData defaults on Validate.
	ConvLen       int
	HistoryCtxLen int

	// NumUsers is the number of personas sampled per conversation.
	NumUsers int

	// IncludeModerator adds a moderator to the generated record.
	IncludeModerator bool

	// ModeratorName overrides the default "moderator" username.
	ModeratorName string

	// Rand supplies the sampling randomness. Override in tests.
	Rand *rand.Rand
}

// GenerateConvData samples a random persona subset and a random topic and
// assembles a ConvData record ready for persistence or direct generation.
func GenerateConvData(
	personas []*persona.Persona,
	topics []string,
	userInstructions string,
	modInstructions string,
	settings GenerationSettings,
) (*ConvData, error) {
	if settings.NumUsers <= 0 {
		return nil, fmt.Errorf("number of users must be positive, got %d", settings.NumUsers)
	}
	if settings.NumUsers > len(personas) {
		return nil, fmt.Errorf("number of users (%d) must be less or equal to the number of provided personas (%d)", settings.NumUsers, len(personas))
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("at least one topic is required")
	}

	r := settings.Rand
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	sampled := samplePersonas(personas, settings.NumUsers, r)
	topic := topics[r.Intn(len(topics))]

	userNames := make([]string, len(sampled))
	userAttributes := make([][]string, len(sampled))
	for i, p := range sampled {
		userNames[i] = p.Username
		userAttributes[i] = p.AttributeList()
	}

	data := &ConvData{
		Context:          fmt.Sprintf("%s '%s'", CtxPreface, topic),
		UserNames:        userNames,
		UserAttributes:   userAttributes,
		UserInstructions: userInstructions,
		SelectorType:     settings.SelectorType,
		SelectorConfig:   settings.SelectorConfig,
		ConvLen:          settings.ConvLen,
		HistoryCtxLen:    settings.HistoryCtxLen,
	}

	if settings.IncludeModerator {
		name := settings.ModeratorName
		if name == "" {
			name = "moderator"
		}
		data.ModeratorName = name
		data.ModeratorAttributes = append([]string{}, DefaultModeratorAttributes...)
		data.ModeratorInstructions = modInstructions
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// samplePersonas draws k distinct personas uniformly without replacement.
func samplePersonas(personas []*persona.Persona, k int, r *rand.Rand) []*persona.Persona {
	idx := r.Perm(len(personas))[:k]
	sampled := make([]*persona.Persona, k)
	for i, j := range idx {
		sampled[i] = personas[j]
	}
	return sampled
}
