// relay/controllers/relay.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"

	"relay/config"
	"relay/services/llm"
	"relay/types"
	"relay/utils/logging"

	"go.uber.org/zap"
)

// ErrNoMessages means the inbound event's messages sequence was empty.
var ErrNoMessages = errors.New("chat event has no messages")

type RelayController struct {
	llm *llm.Client
}

func NewRelayController(cfg config.Config) *RelayController {
	return &RelayController{
		llm: llm.NewClient(cfg.LLMURL, cfg.LLMTimeout),
	}
}

// LatestUserMessage extracts the content of the last entry in the event's
// messages sequence. Earlier entries are ignored; no trimming or
// normalization is applied.
func LatestUserMessage(ev types.ChatEvent) (string, error) {
	if len(ev.Messages) == 0 {
		return "", ErrNoMessages
	}
	return ev.Messages[len(ev.Messages)-1].Message.Content, nil
}

// Respond runs one full message cycle: parse the raw inbound frame, extract
// the latest utterance, submit it to the generation endpoint and build the
// two outbound frames, already serialized and in send order. Any failure
// aborts the cycle; the caller tears the connection down.
func (c *RelayController) Respond(ctx context.Context, data []byte) ([][]byte, error) {
	logging.RequestLogger.Info("received frame", zap.ByteString("data", data))

	var ev types.ChatEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	question, err := LatestUserMessage(ev)
	if err != nil {
		return nil, err
	}
	logging.RequestLogger.Info("latest user message", zap.String("content", question))

	answer, err := c.llm.Ask(ctx, question)
	if err != nil {
		return nil, err
	}
	logging.RequestLogger.Info("generation reply", zap.String("text", answer))

	input, err := json.Marshal(types.AssistantInputFrame{Type: types.FrameAssistantInput, Text: answer})
	if err != nil {
		return nil, err
	}
	end, err := json.Marshal(types.AssistantEndFrame{Type: types.FrameAssistantEnd})
	if err != nil {
		return nil, err
	}
	return [][]byte{input, end}, nil
}
