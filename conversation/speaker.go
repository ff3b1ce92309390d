package conversation

import "context"

// Speaker is the capability boundary to an actor that, given the current
// context window text, produces one utterance. Implementations are typically
// backed by a generative model; the engine never inspects the backend beyond
// the opaque model identifier stored alongside each produced utterance.
//
// Speak may block for the duration of a model call. The engine treats it as
// a synchronous call with no timeout of its own; callers needing timeouts
// wrap the context they pass to Run.
type Speaker interface {
	// Name returns the unique username of this speaker.
	Name() string

	// ModelID returns an opaque identifier of the backing model.
	ModelID() string

	// Speak produces one utterance conditioned on the joined context window.
	Speak(ctx context.Context, window string) (string, error)
}
