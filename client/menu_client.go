// client/menu_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
)

// MenuFetcher downloads the published menu feed. Implementations
// return an error on any transport or decode failure; callers treat
// an unavailable feed as "skip this sync cycle".
type MenuFetcher interface {
	FetchMenuFeed(ctx context.Context) (*model.MenuFeed, error)
}

type MenuClient struct {
	httpClient *http.Client
	url        string
}

func NewMenuClient(url string) *MenuClient {
	return &MenuClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
	}
}

var _ MenuFetcher = (*MenuClient)(nil)

// FetchMenuFeed downloads and decodes the menu export document.
func (c *MenuClient) FetchMenuFeed(ctx context.Context) (*model.MenuFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download menu feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu feed returned status %d", resp.StatusCode)
	}

	var feed model.MenuFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode menu feed: %w", err)
	}

	logger.Debug("Menu feed downloaded",
		zap.Int("menus", len(feed.Menus)),
		zap.Int("addendums", len(feed.Addendums)))
	return &feed, nil
}
