// Package network provides the HTTP client shared by the API client and the release checker.
package network

import (
	"net/http"
	"time"

	"github.com/epilist-cli/epilist/constant"
)

// Client is the default client. Requests through it carry the epilist User-Agent.
var Client = New(time.Minute)

// New returns a client with the given timeout and the tuned shared transport.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{next: transport},
	}
}

var transport = newTransport()

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}

	// RoundTrip must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", constant.UserAgent)
	return t.next.RoundTrip(clone)
}
