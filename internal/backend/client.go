// Package backend is the outbound boundary to the remote chat completion
// service. Any failure here routes the caller to the local fallback path.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// ContextMessage is one turn of conversational context sent with a request.
type ContextMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ReplyRequest is the JSON body for a reply request.
type ReplyRequest struct {
	Input             string                 `json:"input"`
	Context           []ContextMessage       `json:"context"`
	RelationshipLevel int                    `json:"relationshipLevel"`
	PersonalityMode   models.PersonalityMode `json:"personalityMode"`
}

// ReplyResponse is the backend's answer. UseKeywordFallback instructs the
// caller to discard the provided text and use the local fallback instead.
type ReplyResponse struct {
	Response           string   `json:"response"`
	Confidence         float64  `json:"confidence,omitempty"`
	Emotion            string   `json:"emotion,omitempty"`
	Model              string   `json:"model,omitempty"`
	Tools              []string `json:"tools,omitempty"`
	TonyStarkComment   string   `json:"tonyStarkComment,omitempty"`
	UseKeywordFallback bool     `json:"useKeywordFallback"`
}

// Client talks to the remote chat backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Reply requests a generated reply for the current turn. The conversational
// turn suspends until response or failure; failures are returned as errors
// and never partially-decoded responses.
func (c *Client) Reply(ctx context.Context, req *ReplyRequest) (*ReplyResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal reply request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build reply request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("backend reply: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read reply response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend reply: status %d: %s", resp.StatusCode, string(body))
	}

	var result ReplyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode reply response: %w", err)
	}

	return &result, nil
}
