package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSentiment talks to an optional local NLP sidecar for linguistic
// polarity. The timeout is short by contract: a slow sidecar is treated the
// same as an absent one.
type HTTPSentiment struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSentiment(baseURL string) *HTTPSentiment {
	return &HTTPSentiment{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

type polarityRequest struct {
	Text string `json:"text"`
}

type polarityResponse struct {
	Positive bool `json:"positive"`
	Negative bool `json:"negative"`
}

// Polarity asks the sidecar whether the text carries positive or negative
// sentiment.
func (c *HTTPSentiment) Polarity(ctx context.Context, text string) (bool, bool, error) {
	data, err := json.Marshal(polarityRequest{Text: text})
	if err != nil {
		return false, false, fmt.Errorf("marshal polarity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/polarity", bytes.NewReader(data))
	if err != nil {
		return false, false, fmt.Errorf("build polarity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, false, fmt.Errorf("sentiment polarity: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, false, fmt.Errorf("read polarity response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return false, false, fmt.Errorf("sentiment polarity: status %d: %s", resp.StatusCode, string(body))
	}

	var result polarityResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, false, fmt.Errorf("decode polarity response: %w", err)
	}

	return result.Positive, result.Negative, nil
}
