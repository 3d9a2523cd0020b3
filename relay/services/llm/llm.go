// relay/services/llm/llm.go
package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"relay/utils/httputils"
	"relay/utils/logging"
)

// ErrNoText means the generation endpoint answered without a "text" field.
var ErrNoText = errors.New("generation reply has no text field")

type Client struct {
	url    string
	client *http.Client
}

// NewClient builds a generation client for url. timeout bounds the whole
// round trip of one Ask call.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type predictionRequest struct {
	Question string `json:"question"`
}

type predictionResponse struct {
	Text *string `json:"text"`
}

// Ask submits one question and returns the generated answer. There is no
// retry: a network error, timeout, non-2xx status, undecodable body or
// missing text field all surface to the caller.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	defer logging.LogDuration(ctx, "llm_ask")()
	var resp predictionResponse
	if err := httputils.PostJSON(ctx, c.client, c.url, predictionRequest{Question: question}, &resp); err != nil {
		return "", err
	}
	if resp.Text == nil {
		return "", ErrNoText
	}
	return *resp.Text, nil
}
