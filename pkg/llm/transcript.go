package llm

import (
	"fmt"

	"github.com/openai/openai-go/v2"
)

// Transcript is the ordered conversation resent with every request. Follow-up
// questions about word parts only make sense to the model when the earlier
// answers are still in context.
type Transcript struct {
	messages []openai.ChatCompletionMessageParamUnion
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// AddSystem registers the system message. Call it once, before any user turn.
func (t *Transcript) AddSystem(content string) {
	t.messages = append(t.messages, openai.SystemMessage(content))
}

// AddUser registers a question, wrapped in the same quoted Text block the
// system prompt's worked example uses.
func (t *Transcript) AddUser(content string) {
	t.messages = append(t.messages, openai.UserMessage(fmt.Sprintf("Text: \"\"\"\n%s\n\"\"\"", content)))
}

// Messages returns the conversation in request-parameter form.
func (t *Transcript) Messages() []openai.ChatCompletionMessageParamUnion {
	return t.messages
}

// Len returns the number of registered messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

func (t *Transcript) append(message openai.ChatCompletionMessageParamUnion) {
	t.messages = append(t.messages, message)
}
