// Storefront is the client-side CLI: it browses the menu over the HTTP API
// and owns the session's cart, persisted under the user config directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"tastybites/config"
	"tastybites/internal/cart"
	"tastybites/internal/client"
)

const usage = `usage: storefront <command> [args]

commands:
  menu [-category C] [-search S]  list menu items
  item <id>                       show one item
  add <id> [quantity]             add an item to the cart
  cart                            show the cart
  remove <id>                     remove an item from the cart
  update <id> <quantity>          set an item's quantity
  clear                           empty the cart
  checkout                        show totals and place the order
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	config.Load()
	logger := logrus.StandardLogger()

	menu := client.NewMenuClient(config.EnvOr("STOREFRONT_API", "http://localhost:8080"), nil)
	engine := cart.New(mustOpenStore(logger), printNotifier{}, logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "menu":
		flags := flag.NewFlagSet("menu", flag.ExitOnError)
		category := flags.String("category", "", "filter by category")
		search := flags.String("search", "", "filter by name substring")
		flags.Parse(os.Args[2:])
		runMenu(ctx, menu, client.Filters{Search: *search, Category: *category})
	case "item":
		runItem(ctx, menu, argInt(2, "item id"))
	case "add":
		quantity := 1
		if len(os.Args) > 3 {
			quantity = argInt(3, "quantity")
		}
		runAdd(ctx, menu, engine, argInt(2, "item id"), quantity)
	case "cart":
		runCart(engine)
	case "remove":
		engine.RemoveFromCart(argInt(2, "item id"))
	case "update":
		engine.UpdateQuantity(argInt(2, "item id"), argInt(3, "quantity"))
	case "clear":
		engine.ClearCart()
	case "checkout":
		runCheckout(engine)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runMenu(ctx context.Context, menu *client.MenuClient, filters client.Filters) {
	items, err := menu.List(ctx, filters)
	if err != nil {
		logrus.Fatal("Failed to load menu: ", err)
	}
	if len(items) == 0 {
		fmt.Println("No items match.")
		return
	}
	for _, item := range items {
		marker := " "
		if item.Popular {
			marker = "*"
		}
		fmt.Printf("%s %3d  %-28s %8s  %s\n", marker, item.ID, item.Name, formatPrice(item.Price), item.Category)
	}
}

func runItem(ctx context.Context, menu *client.MenuClient, id int) {
	item, err := menu.Get(ctx, id)
	if err != nil {
		logrus.Fatal("Failed to load item: ", err)
	}
	if item == nil {
		fmt.Println("Item not found.")
		os.Exit(1)
	}
	fmt.Printf("%s (%s) %s\n%s\n", item.Name, item.Category, formatPrice(item.Price), item.Description)
}

func runAdd(ctx context.Context, menu *client.MenuClient, engine *cart.Engine, id, quantity int) {
	item, err := menu.Get(ctx, id)
	if err != nil {
		logrus.Fatal("Failed to load item: ", err)
	}
	if item == nil {
		fmt.Println("Item not found.")
		os.Exit(1)
	}
	engine.AddToCart(*item, quantity)
}

func runCart(engine *cart.Engine) {
	lines := engine.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	for _, line := range lines {
		fmt.Printf("%3d  %-28s x%-3d %8s\n", line.ID, line.Name, line.Quantity, formatPrice(line.Price*line.Quantity))
	}
	fmt.Printf("\n%d items, subtotal %s\n", engine.Count(), formatPrice(engine.Subtotal()))
}

func runCheckout(engine *cart.Engine) {
	if engine.Count() == 0 {
		fmt.Println("Your cart is empty.")
		os.Exit(1)
	}
	summary := engine.Checkout()
	fmt.Printf("Subtotal %s\n", formatPrice(summary.Subtotal))
	fmt.Printf("Tax      $%.2f\n", summary.Tax/100)
	fmt.Printf("Total    $%.2f\n", summary.Total/100)
}

func mustOpenStore(logger logrus.FieldLogger) cart.Storage {
	base, err := os.UserConfigDir()
	if err != nil {
		logger.WithError(err).Warn("no user config dir, cart will not persist")
		return cart.NewMemoryStore()
	}
	store, err := cart.NewFileStore(filepath.Join(base, "tastybites"))
	if err != nil {
		logger.WithError(err).Warn("failed to open cart storage, cart will not persist")
		return cart.NewMemoryStore()
	}
	return store
}

func argInt(index int, name string) int {
	if len(os.Args) <= index {
		fmt.Fprintf(os.Stderr, "missing %s\n%s", name, usage)
		os.Exit(2)
	}
	value, err := strconv.Atoi(os.Args[index])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid %s %q\n", name, os.Args[index])
		os.Exit(2)
	}
	return value
}

func formatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// printNotifier surfaces cart notifications on stdout.
type printNotifier struct{}

func (printNotifier) Notify(title, message string) {
	fmt.Printf("%s: %s\n", title, message)
}
