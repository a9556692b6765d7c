package cart

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"tastybites/internal/domain"
)

// Engine owns the cart of a single client session: an insertion-ordered set
// of lines, at most one per item id. Every mutation persists the full cart
// synchronously. Construct one per session and pass the handle explicitly;
// the engine is not safe for use from multiple goroutines.
type Engine struct {
	store    Storage
	notifier Notifier
	logger   logrus.FieldLogger
	lines    []domain.CartLine
}

// New builds an engine rehydrated from the given storage. Absent or
// malformed persisted state falls back to an empty cart; the failure is
// logged, never surfaced.
func New(store Storage, notifier Notifier, logger logrus.FieldLogger) *Engine {
	e := &Engine{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
	e.rehydrate()
	return e
}

func (e *Engine) rehydrate() {
	raw, err := e.store.Read(CartKey)
	if err != nil {
		e.logger.WithError(err).Warn("failed to read saved cart, starting empty")
		return
	}
	if len(raw) == 0 {
		return
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		e.logger.WithError(err).Warn("failed to parse saved cart, starting empty")
		return
	}
	e.lines = lines
}

func (e *Engine) persist() {
	raw, err := json.Marshal(e.lines)
	if err != nil {
		e.logger.WithError(err).Warn("failed to serialize cart")
		return
	}
	if err := e.store.Write(CartKey, raw); err != nil {
		e.logger.WithError(err).Warn("failed to save cart")
	}
}

// AddToCart merges the item into the cart: an existing line's quantity grows
// by the given amount, otherwise a new line is appended. Quantities below 1
// are treated as 1.
func (e *Engine) AddToCart(item domain.MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	merged := false
	for i := range e.lines {
		if e.lines[i].ID == item.ID {
			e.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		e.lines = append(e.lines, domain.CartLine{MenuItem: item, Quantity: quantity})
	}

	e.persist()
	e.notifier.Notify("Added to cart", fmt.Sprintf("%dx %s added.", quantity, item.Name))
}

// RemoveFromCart deletes the line with the given id. Removing an absent id
// is a no-op, not an error.
func (e *Engine) RemoveFromCart(id int) {
	kept := e.lines[:0]
	for _, line := range e.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	e.lines = kept

	e.persist()
	e.notifier.Notify("Removed from cart", "Item removed from your cart.")
}

// UpdateQuantity sets the line's quantity to an absolute value. A quantity
// of zero or less removes the line entirely.
func (e *Engine) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		e.RemoveFromCart(id)
		return
	}

	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines[i].Quantity = quantity
			break
		}
	}
	e.persist()
}

// ClearCart empties the cart and erases its persisted state.
func (e *Engine) ClearCart() {
	e.lines = nil
	if err := e.store.Delete(CartKey); err != nil {
		e.logger.WithError(err).Warn("failed to erase saved cart")
	}
	e.notifier.Notify("Cart cleared", "All items have been removed.")
}

// Count is the total quantity across all lines, recomputed on every call.
func (e *Engine) Count() int {
	count := 0
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal is the pre-tax total in cents, recomputed on every call.
func (e *Engine) Subtotal() int {
	subtotal := 0
	for _, line := range e.lines {
		subtotal += line.Price * line.Quantity
	}
	return subtotal
}

// Lines returns the cart lines in insertion order. The slice is a copy.
func (e *Engine) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), e.lines...)
}
