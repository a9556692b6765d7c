// Package client is the storefront's half of the menu query contract: typed
// list/get calls over HTTP with per-query-tuple result caching and schema
// validation of everything the server returns.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"tastybites/internal/domain"
)

// ErrQueryFailed wraps transport and validation failures. Not-found is not a
// failure: Get returns (nil, nil) for an absent item.
var ErrQueryFailed = errors.New("menu query failed")

// Filters narrows a menu list query. Zero values and the "All" category mean
// "no filter".
type Filters struct {
	Search   string
	Category string
}

// MenuClient caches results keyed by the exact query tuple, so a superseded
// request for one filter combination never overwrites the result of
// another. A client belongs to one session; it is not safe for concurrent
// use.
type MenuClient struct {
	baseURL string
	http    *http.Client

	listCache map[string][]domain.MenuItem
	itemCache map[int]itemEntry
}

type itemEntry struct {
	item *domain.MenuItem
}

func NewMenuClient(baseURL string, httpClient *http.Client) *MenuClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MenuClient{
		baseURL:   baseURL,
		http:      httpClient,
		listCache: make(map[string][]domain.MenuItem),
		itemCache: make(map[int]itemEntry),
	}
}

// List fetches the items matching the filters, serving repeated queries for
// the same tuple from cache.
func (c *MenuClient) List(ctx context.Context, filters Filters) ([]domain.MenuItem, error) {
	if filters.Category == domain.CategoryAll {
		filters.Category = ""
	}

	key := fmt.Sprintf("list|%s|%s", filters.Search, filters.Category)
	if items, ok := c.listCache[key]; ok {
		return items, nil
	}

	u, err := url.Parse(c.baseURL + "/api/items")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	q := u.Query()
	if filters.Category != "" {
		q.Set("category", filters.Category)
	}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	u.RawQuery = q.Encode()

	res, err := c.do(ctx, u.String())
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrQueryFailed, res.StatusCode)
	}

	var items []domain.MenuItem
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}

	c.listCache[key] = items
	return items, nil
}

// Get fetches one item by id. An absent item is (nil, nil), distinguishable
// from transport failures.
func (c *MenuClient) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: item id must be positive", ErrQueryFailed)
	}

	if entry, ok := c.itemCache[id]; ok {
		return entry.item, nil
	}

	res, err := c.do(ctx, fmt.Sprintf("%s/api/items/%d", c.baseURL, id))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		c.itemCache[id] = itemEntry{}
		return nil, nil
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrQueryFailed, res.StatusCode)
	}

	var item domain.MenuItem
	if err := json.NewDecoder(res.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	c.itemCache[id] = itemEntry{item: &item}
	return &item, nil
}

// Reset drops all cached results.
func (c *MenuClient) Reset() {
	c.listCache = make(map[string][]domain.MenuItem)
	c.itemCache = make(map[int]itemEntry)
}

func (c *MenuClient) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return res, nil
}
