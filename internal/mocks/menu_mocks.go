// Package mocks holds testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastybites/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) ListMenuItems(search, category string) ([]domain.MenuItem, error) {
	args := m.Called(search, category)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *CatalogRepository) CreateMenuItem(input *domain.MenuItemInput) (*domain.MenuItem, error) {
	args := m.Called(input)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *CatalogRepository) CountMenuItems() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) ListKey(search, category string) string {
	args := m.Called(search, category)
	return args.String(0)
}

func (m *MenuCache) GetList(ctx context.Context, key string) ([]domain.MenuItem, bool, error) {
	args := m.Called(ctx, key)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Bool(1), args.Error(2)
}

func (m *MenuCache) SetList(ctx context.Context, key string, items []domain.MenuItem) error {
	args := m.Called(ctx, key, items)
	return args.Error(0)
}

type QueryPublisher struct {
	mock.Mock
}

func NewQueryPublisher(t testingT) *QueryPublisher {
	m := &QueryPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QueryPublisher) PublishQuery(ctx context.Context, evt domain.QueryEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) List(ctx context.Context, search, category string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, search, category)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuServiceInterface) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}
