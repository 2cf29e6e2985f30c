package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

const defaultTimeout = 15 * time.Second

// Client fetches JSON resources relative to a base URL
type Client struct {
	baseURL    string
	itemsPath  string
	httpClient *http.Client
}

func New(baseURL, itemsPath string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		itemsPath:  itemsPath,
		httpClient: httpClient,
	}
}

// FetchJSON loads path and decodes the body into v. Any non-2xx response is
// an error naming the path.
func (c *Client) FetchJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to load %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// FetchItems loads the configured items resource
func (c *Client) FetchItems(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	if err := c.FetchJSON(ctx, c.itemsPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
