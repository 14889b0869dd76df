package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	tunnelAttempts = 10
	tunnelBackoff  = 3 * time.Second
)

// tunnelsResponse matches the /api/tunnels response from the ngrok local API.
type tunnelsResponse struct {
	Tunnels []tunnel `json:"tunnels"`
}

type tunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectTunnelURL queries the ngrok local API and returns the first HTTPS
// tunnel URL. It retries while ngrok is still starting up.
func detectTunnelURL(ctx context.Context, apiBase string, attempts int, backoff time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		tunnels, err := fetchTunnels(ctx, client, apiBase+"/api/tunnels")
		if err != nil {
			lastErr = err
			continue
		}

		// Prefer HTTPS tunnels
		for _, t := range tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}
		if len(tunnels) > 0 {
			return tunnels[0].PublicURL, nil
		}
		lastErr = fmt.Errorf("no active tunnels")
	}

	return "", fmt.Errorf("tunnel API %s: giving up after %d attempts: %w", apiBase, attempts, lastErr)
}

func fetchTunnels(ctx context.Context, client *http.Client, url string) ([]tunnel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tunnel API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out tunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode tunnel API response: %w", err)
	}
	return out.Tunnels, nil
}
