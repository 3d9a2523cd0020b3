package types

// ChatEvent is the inbound frame shape sent by the voice client. Only the
// last entry of Messages is ever read; earlier entries are carried for
// protocol compatibility and ignored.
type ChatEvent struct {
	Messages []MessageEntry `json:"messages"`
}

type MessageEntry struct {
	Message MessageBody `json:"message"`
}

type MessageBody struct {
	Content string `json:"content"`
}

// GenerationReply is the body returned by the generation endpoint. Text is a
// pointer so a missing key can be told apart from an empty answer.
type GenerationReply struct {
	Text *string `json:"text"`
}

// Outbound frame types, written in this order for every inbound frame.
const (
	FrameAssistantInput = "assistant_input"
	FrameAssistantEnd   = "assistant_end"
)

// AssistantInputFrame always carries text, even when the answer is empty.
type AssistantInputFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AssistantEndFrame carries no payload.
type AssistantEndFrame struct {
	Type string `json:"type"`
}
