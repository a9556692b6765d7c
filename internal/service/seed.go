package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tastybites/internal/domain"
)

// Seeder populates an empty catalog with the initial menu. It runs once at
// server startup and is idempotent: a non-empty catalog is left untouched.
type Seeder struct {
	repository CatalogRepository
	logger     logrus.FieldLogger
}

func NewSeeder(repository CatalogRepository, logger logrus.FieldLogger) *Seeder {
	return &Seeder{repository: repository, logger: logger}
}

func (s *Seeder) Run() error {
	count, err := s.repository.CountMenuItems()
	if err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		s.logger.Infof("catalog already has %d items, skipping seed", count)
		return nil
	}

	for _, input := range seedMenuItems {
		if err := input.Validate(); err != nil {
			return fmt.Errorf("invalid seed item %q: %w", input.Name, err)
		}
		if _, err := s.repository.CreateMenuItem(&input); err != nil {
			return fmt.Errorf("failed to seed item %q: %w", input.Name, err)
		}
	}

	s.logger.Infof("seeded catalog with %d items", len(seedMenuItems))
	return nil
}

var seedMenuItems = []domain.MenuItemInput{
	{
		Name:        "Classic Cheeseburger",
		Description: "Juicy beef patty with cheddar cheese, lettuce, tomato, and our secret sauce on a brioche bun.",
		Price:       1299,
		Category:    "Burgers",
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800&q=80",
		Popular:     true,
	},
	{
		Name:        "Margherita Pizza",
		Description: "Traditional wood-fired pizza with San Marzano tomato sauce, fresh mozzarella, and basil.",
		Price:       1450,
		Category:    "Pizza",
		ImageURL:    "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?w=800&q=80",
		Popular:     true,
	},
	{
		Name:        "Spicy Chicken Wings",
		Description: "Crispy fried wings tossed in our signature buffalo sauce, served with blue cheese dip.",
		Price:       1099,
		Category:    "Starters",
		ImageURL:    "https://images.unsplash.com/photo-1608039829572-78524f79c4c7?w=800&q=80",
		Popular:     false,
	},
	{
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce, parmesan cheese, croutons, and creamy Caesar dressing.",
		Price:       899,
		Category:    "Salads",
		ImageURL:    "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?w=800&q=80",
		Popular:     false,
	},
	{
		Name:        "Double Bacon Burger",
		Description: "Two beef patties, crispy bacon, caramelized onions, and BBQ sauce.",
		Price:       1599,
		Category:    "Burgers",
		ImageURL:    "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?w=800&q=80",
		Popular:     true,
	},
	{
		Name:        "Pepperoni Pizza",
		Description: "Classic pizza topped with generous amounts of spicy pepperoni and mozzarella.",
		Price:       1550,
		Category:    "Pizza",
		ImageURL:    "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=800&q=80",
		Popular:     true,
	},
	{
		Name:        "Chocolate Lava Cake",
		Description: "Warm chocolate cake with a molten center, served with vanilla ice cream.",
		Price:       799,
		Category:    "Desserts",
		ImageURL:    "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=800&q=80",
		Popular:     true,
	},
	{
		Name:        "Iced Caramel Macchiato",
		Description: "Rich espresso layered with vanilla syrup, milk, and caramel drizzle.",
		Price:       499,
		Category:    "Drinks",
		ImageURL:    "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=800&q=80",
		Popular:     false,
	},
}
