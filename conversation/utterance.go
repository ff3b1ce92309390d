package conversation

import "fmt"

// Utterance is one archived contribution to a conversation: the attributed
// speaker name, the produced text and the identifier of the model that
// produced it. Model is nil for seeded (pre-written) entries, which persists
// as an explicit JSON null in the transcript.
type Utterance struct {
	Name  string  `json:"name"`
	Text  string  `json:"text"`
	Model *string `json:"model"`
}

// FormatChatMessage renders an utterance in the "name: text" form used for
// context window entries.
func FormatChatMessage(name, text string) string {
	return fmt.Sprintf("%s: %s", name, text)
}
