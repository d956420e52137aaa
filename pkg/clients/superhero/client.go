/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package superhero provides the client for the public superhero catalog,
// a single unauthenticated GET returning the full hero list as a JSON array.
package superhero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"

	"github.com/startrack-app/startrack/pkg/common/structs"
	"github.com/startrack-app/startrack/pkg/config"
	"github.com/startrack-app/startrack/pkg/logger"
)

const defaultRetryBackoff = 500 * time.Millisecond

// Doer abstracts the underlying HTTP client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the full hero catalog.
type Client struct {
	url        string
	httpClient Doer
}

// NewClient builds a catalog client with timeout and retry budget from
// configuration.
func NewClient(cfg *config.SuperheroConfig) *Client {
	backoff := heimdall.NewConstantBackoff(defaultRetryBackoff, 100*time.Millisecond)
	hc := httpclient.NewClient(
		httpclient.WithHTTPTimeout(cfg.Timeout),
		httpclient.WithRetryCount(cfg.RetryCount),
		httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
	)
	return &Client{
		url:        cfg.URL,
		httpClient: hc,
	}
}

// NewClientWithDoer builds a catalog client over an explicit HTTP client.
func NewClientWithDoer(url string, doer Doer) *Client {
	return &Client{url: url, httpClient: doer}
}

// FetchAllHeroes performs the catalog GET and parses the hero array.
// Any non-2xx status, transport error, or parse error is returned as-is;
// fallback policy lives in the caller.
func (c *Client) FetchAllHeroes(ctx context.Context) ([]structs.Superhero, error) {
	log := logger.Logger(ctx).WithField("service", "superhero")
	log.Info("fetching hero catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("error fetching hero catalog")
		return nil, fmt.Errorf("failed to fetch hero catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("catalog fetch failed, status: %s", http.StatusText(resp.StatusCode))
	}

	var heroes []structs.Superhero
	if err := json.Unmarshal(body, &heroes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	log.WithField("total_hero_count", len(heroes)).Info("found heroes")
	return heroes, nil
}
