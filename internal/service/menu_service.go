package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tastybites/internal/domain"
)

var (
	ErrInvalidItemID   = errors.New("item id must be a positive integer")
	ErrMalformedRecord = errors.New("catalog returned a malformed record")
)

// MenuService answers menu queries over the catalog repository. It is
// read-only: list and get are the only operations, and both validate every
// record against the catalog schema before returning it. Cache and publisher
// are optional; a nil value disables that concern.
type MenuService struct {
	repository CatalogRepository
	cache      MenuCache
	publisher  QueryPublisher
}

func NewMenuService(repository CatalogRepository, cache MenuCache, publisher QueryPublisher) *MenuService {
	return &MenuService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// List returns the items matching the given filters in catalog order. Empty
// filters and the "All" category mean "no filter". Category and search
// narrow each other (AND).
func (s *MenuService) List(ctx context.Context, search, category string) ([]domain.MenuItem, error) {
	if category == domain.CategoryAll {
		category = ""
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.ListKey(search, category)
		if items, ok, _ := s.cache.GetList(ctx, cacheKey); ok {
			return items, nil
		}
	}

	items, err := s.repository.ListMenuItems(search, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedRecord, item.ID, err)
		}
	}

	if s.cache != nil {
		_ = s.cache.SetList(ctx, cacheKey, items)
	}
	s.publish(ctx, domain.QueryEvent{
		Type:     "menu_list",
		Search:   search,
		Category: category,
	})

	return items, nil
}

// Get returns the item with the given id, or (nil, nil) when it does not
// exist. Absence is an ordinary result, distinguishable from storage
// failures, which come back as errors.
func (s *MenuService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	if id <= 0 {
		return nil, ErrInvalidItemID
	}

	item, err := s.repository.GetMenuItem(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item %d: %w", id, err)
	}
	if item == nil {
		return nil, nil
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedRecord, id, err)
	}

	s.publish(ctx, domain.QueryEvent{
		Type:   "menu_get",
		ItemID: id,
	})

	return item, nil
}

func (s *MenuService) publish(ctx context.Context, evt domain.QueryEvent) {
	if s.publisher == nil {
		return
	}
	evt.Timestamp = time.Now()
	_ = s.publisher.PublishQuery(ctx, evt)
}
