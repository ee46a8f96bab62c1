package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultClientTimeout = 15 * time.Second
	defaultRetryCount    = 2
	userAgent            = "go-codeblocks"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used by code
// blocks that call out to other services.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com/cat.png")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with a request timeout, a
// small retry budget for transport errors and 5xx responses, and the SDK
// user agent.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetTimeout(defaultClientTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetHeader("User-Agent", userAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &HTTPClient{Client: client}
}
