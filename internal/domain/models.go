package domain

import (
	"errors"
	"fmt"
	"time"
)

// CategoryAll is the sentinel category label meaning "no category filter".
const CategoryAll = "All"

// MenuItem is a catalog record. Items are created once during seeding and
// read-only afterwards; ids are assigned by the database and never reused.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // currency minor units (cents)
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Popular     bool   `json:"popular"`
}

// MenuItemInput is a MenuItem before the database has assigned its id.
type MenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Popular     bool   `json:"popular"`
}

// CartLine is one distinct item's entry in a cart.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// QueryEvent is published to Kafka whenever the menu service answers a query.
type QueryEvent struct {
	Type      string    `json:"type"`
	Search    string    `json:"search,omitempty"`
	Category  string    `json:"category,omitempty"`
	ItemID    int       `json:"item_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

var (
	ErrMissingName        = errors.New("menu item name must not be empty")
	ErrMissingDescription = errors.New("menu item description must not be empty")
	ErrMissingCategory    = errors.New("menu item category must not be empty")
	ErrNegativePrice      = errors.New("menu item price must not be negative")
)

// Validate checks a MenuItem against the catalog schema. It gates both
// storage rows on the server and response bodies on the client, so malformed
// records are rejected at the boundary instead of leaking through.
func (m MenuItem) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("menu item id must be positive, got %d", m.ID)
	}
	return validateFields(m.Name, m.Description, m.Category, m.Price)
}

// Validate checks a MenuItemInput before it is handed to the catalog store.
func (in MenuItemInput) Validate() error {
	return validateFields(in.Name, in.Description, in.Category, in.Price)
}

func validateFields(name, description, category string, price int) error {
	if name == "" {
		return ErrMissingName
	}
	if description == "" {
		return ErrMissingDescription
	}
	if category == "" {
		return ErrMissingCategory
	}
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}
