package service

import (
	"context"

	"tastybites/internal/domain"
)

type MenuServiceInterface interface {
	List(ctx context.Context, search, category string) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
}

type CatalogRepository interface {
	ListMenuItems(search, category string) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	CreateMenuItem(input *domain.MenuItemInput) (*domain.MenuItem, error)
	CountMenuItems() (int, error)
}

type MenuCache interface {
	ListKey(search, category string) string
	GetList(ctx context.Context, key string) ([]domain.MenuItem, bool, error)
	SetList(ctx context.Context, key string, items []domain.MenuItem) error
}

type QueryPublisher interface {
	PublishQuery(ctx context.Context, evt domain.QueryEvent) error
}

var _ MenuServiceInterface = (*MenuService)(nil)
