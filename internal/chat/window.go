package chat

import "strings"

// WindowCapacity is how many turns of short-term memory the agent gets.
const WindowCapacity = 6

// Speaker tags used when rendering turns for the agent.
const (
	SpeakerUser      = "User"
	SpeakerAssistant = "Assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Speaker string
	Text    string
}

// Window is a fixed-capacity FIFO of recent turns. Appending to a full
// window evicts the oldest turn. It is owned by a single session's chat loop
// and is not safe for concurrent use.
type Window struct {
	turns [WindowCapacity]Turn
	start int
	count int
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) Append(speaker, text string) {
	if w.count < WindowCapacity {
		w.turns[(w.start+w.count)%WindowCapacity] = Turn{Speaker: speaker, Text: text}
		w.count++
		return
	}
	w.turns[w.start] = Turn{Speaker: speaker, Text: text}
	w.start = (w.start + 1) % WindowCapacity
}

func (w *Window) Len() int {
	return w.count
}

// Turns returns the window contents oldest first.
func (w *Window) Turns() []Turn {
	out := make([]Turn, 0, w.count)
	for i := 0; i < w.count; i++ {
		out = append(out, w.turns[(w.start+i)%WindowCapacity])
	}
	return out
}

// Render serializes the window for the agent's context field, one
// "Speaker: text" line per turn, oldest first.
func (w *Window) Render() string {
	var b strings.Builder
	for i, turn := range w.Turns() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(turn.Speaker)
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}
