package imagehost

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrEmptyURL = errors.New("image host returned an empty URL")

// Client uploads image buffers to the external image host and returns
// stable public URLs. Retries and timeouts live here so callers treat
// the upload as a single round-trip.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

type uploadResponse struct {
	Data struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		Medium     struct {
			URL string `json:"url"`
		} `json:"medium"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// Upload sends an image buffer and returns its public URL plus a
// display variant when the host produces one. The only validation on
// the response is that the URL is non-empty; retries beyond the
// client's own are the caller's concern.
func (c *Client) Upload(ctx context.Context, name string, data []byte) (url, displayURL string, err error) {
	var result uploadResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"key":   c.apiKey,
			"name":  name,
			"image": base64.StdEncoding.EncodeToString(data),
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		return "", "", fmt.Errorf("image upload failed: %w", err)
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("image host returned status %d", resp.StatusCode())
	}
	if result.Data.URL == "" {
		return "", "", ErrEmptyURL
	}

	display := result.Data.DisplayURL
	if display == "" {
		display = result.Data.Medium.URL
	}
	return result.Data.URL, display, nil
}
