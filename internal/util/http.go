package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes caps how much GetBytes reads.
const MaxBodyBytes = 4 << 20

var httpClient = &http.Client{Timeout: 12 * time.Second}

// GetBytes fetches url and returns the body. Non-2xx responses and bodies larger
// than MaxBodyBytes are errors.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("get %s: body exceeds %d bytes", url, MaxBodyBytes)
	}
	return body, nil
}
