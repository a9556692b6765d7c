package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"tastybites/internal/domain"
)

// PostgresCatalog stores menu items in Postgres. After seeding the table is
// read-only, so readers never race with writers.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

// ListMenuItems returns all items matching the given filters, in id order.
// Filters compose with AND semantics: category (unless empty or "All") is an
// exact case-sensitive match, search is a case-sensitive substring match on
// the item name.
func (r *PostgresCatalog) ListMenuItems(search, category string) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, COALESCE(image_url, ''), popular
		FROM menu_items`

	var conditions []string
	var args []interface{}
	if category != "" && category != domain.CategoryAll {
		args = append(args, category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, "name LIKE $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.Popular); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMenuItem returns the item with the given id, or (nil, nil) when no such
// item exists. Absence is not an error.
func (r *PostgresCatalog) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, description, price, category, COALESCE(image_url, ''), popular
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.Popular)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateMenuItem inserts a new item and returns the stored record with its
// assigned id. Only the seeding step calls this.
func (r *PostgresCatalog) CreateMenuItem(input *domain.MenuItemInput) (*domain.MenuItem, error) {
	item := domain.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Popular:     input.Popular,
	}
	err := r.DB.QueryRow(
		"INSERT INTO menu_items (name, description, price, category, image_url, popular) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		input.Name, input.Description, input.Price, input.Category, input.ImageURL, input.Popular).
		Scan(&item.ID)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresCatalog) CountMenuItems() (int, error) {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresCatalog) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price INTEGER NOT NULL,
			category TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			popular BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
