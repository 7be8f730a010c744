// Package translate calls the external translation service. The service
// auto-detects the source language; we only pass text and a destination.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"aihub/types"
)

var ErrEmptyText = errors.New("no text provided")

type Client struct {
	URL    string
	client *http.Client
}

func NewClient() *Client {
	return &Client{
		URL:    os.Getenv("TRANSLATE_API_URL"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type apiRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type apiResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate sends text to the remote service and returns the translation.
// dest defaults to "en" when empty.
func (c *Client) Translate(ctx context.Context, text, dest string) (*types.TranslateResponse, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if dest == "" {
		dest = "en"
	}

	reqBody, err := json.Marshal(apiRequest{Text: text, Source: "auto", Target: dest})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation service: %w", err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode translation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("translation service: %s", out.Error)
		}
		return nil, fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	return &types.TranslateResponse{
		Original:   text,
		Translated: out.TranslatedText,
		DestLang:   dest,
	}, nil
}
