// Package assistant wraps the remote chat and analytics functions behind a
// small client interface. Both are single request/response HTTP calls; there
// is no streaming and no retry.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Reply is the remote chat function's answer. Status is "ok" or "error" on
// deployments that return it, and empty on older ones.
type Reply struct {
	Text   string `json:"text"`
	Status string `json:"status,omitempty"`
}

// Client mediates the remote chat and analytics functions.
type Client interface {
	// Ask sends the raw query text, unmodified, and returns the reply.
	Ask(ctx context.Context, query string) (Reply, error)
	// LogQuery records the raw query to the analytics sink.
	LogQuery(ctx context.Context, query string) error
}

// HTTPClient is the production Client backed by resty.
type HTTPClient struct {
	assistantURL string
	analyticsURL string
	apiKey       string
	http         *resty.Client
}

const requestTimeout = 20 * time.Second

// NewHTTPClient creates a client for the given function endpoints. The
// analytics URL may be empty, in which case LogQuery is a no-op.
func NewHTTPClient(assistantURL, apiKey, analyticsURL string) *HTTPClient {
	return &HTTPClient{
		assistantURL: strings.TrimRight(assistantURL, "/"),
		analyticsURL: strings.TrimRight(analyticsURL, "/"),
		apiKey:       apiKey,
		http:         resty.New().SetTimeout(requestTimeout),
	}
}

// Ask implements Client.
func (c *HTTPClient) Ask(ctx context.Context, query string) (Reply, error) {
	var reply Reply
	req := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"query": query}).
		SetResult(&reply)
	if c.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := req.Post(c.assistantURL)
	if err != nil {
		return Reply{}, err
	}
	if resp.IsError() {
		return Reply{}, fmt.Errorf("assistant function: %s; body: %s", resp.Status(), resp.String())
	}
	if strings.TrimSpace(reply.Text) == "" {
		return Reply{}, fmt.Errorf("assistant function returned an empty payload")
	}
	return reply, nil
}

// LogQuery implements Client.
func (c *HTTPClient) LogQuery(ctx context.Context, query string) error {
	if c.analyticsURL == "" {
		return nil
	}

	req := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"query": query})
	if c.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := req.Post(c.analyticsURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("analytics function: %s", resp.Status())
	}
	return nil
}
