// Package api is the client for the paginated episode listing.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/internal/cache"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/network"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("page must be 1 or greater")

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Source is what the views need from the API. *Client implements it.
type Source interface {
	FetchPage(ctx context.Context, page int) (*episode.Page, error)
	FetchPages(ctx context.Context, pages ...int) ([]*episode.Page, error)
	Episode(ctx context.Context, id int) (*episode.Episode, error)
}

// Client talks to one episode endpoint.
type Client struct {
	base  string
	http  *http.Client
	token string
	cache *cache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces network.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.http = c }
}

// WithToken sends "Authorization: Bearer <token>" with every request.
func WithToken(token string) Option {
	return func(client *Client) { client.token = token }
}

// WithCache serves page responses from c when fresh and stores new ones into it.
func WithCache(c *cache.Cache) Option {
	return func(client *Client) { client.cache = c }
}

// New returns a client for the listing at base, e.g. https://rickandmortyapi.com/api/episode.
func New(base string, options ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: network.Client,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// PageURL sets the page query parameter on base, keeping any parameters already present.
func PageURL(base string, page int) string {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Sprintf("%s?page=%d", base, page)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// EpisodeURL appends id to the path of base, keeping its query parameters.
func EpisodeURL(base string, id int) string {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Sprintf("%s/%d", base, id)
	}

	return u.JoinPath(strconv.Itoa(id)).String()
}

// FetchPage requests one page of the listing.
func (c *Client) FetchPage(ctx context.Context, page int) (*episode.Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("fetch page %d: %w", page, ErrInvalidPage)
	}

	target := PageURL(c.base, page)

	var result episode.Page
	if c.cache != nil && c.cache.Read(target, &result) {
		log.Debugf("page %d served from cache", page)
		return &result, nil
	}

	if err := c.get(ctx, target, &result); err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}

	log.With(log.Fields{"page": page, "results": len(result.Results), "pages": result.Info.Pages}).Info("page fetched")

	if c.cache != nil {
		if err := c.cache.Write(target, &result); err != nil {
			log.Warnf("cache page %d: %v", page, err)
		}
	}

	return &result, nil
}

// FetchPages requests all pages concurrently and returns them in argument order.
// The first failure cancels the outstanding requests.
func (c *Client) FetchPages(ctx context.Context, pages ...int) ([]*episode.Page, error) {
	results := make([]*episode.Page, len(pages))
	g, ctx := errgroup.WithContext(ctx)

	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			p, err := c.FetchPage(ctx, page)
			if err != nil {
				return err
			}
			results[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Episode requests a single episode by identifier.
func (c *Client) Episode(ctx context.Context, id int) (*episode.Episode, error) {
	var ep episode.Episode
	if err := c.get(ctx, EpisodeURL(c.base, id), &ep); err != nil {
		return nil, fmt.Errorf("fetch episode %d: %w", id, err)
	}
	return &ep, nil
}

func (c *Client) get(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, URL: target}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
