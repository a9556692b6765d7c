package cart

// TaxRate applied at checkout.
const TaxRate = 0.08

// CheckoutSummary is the amount breakdown shown to the user before the cart
// is cleared. Subtotal is exact cents; tax and total carry the fractional
// cents the rate produces.
type CheckoutSummary struct {
	Subtotal int
	Tax      float64
	Total    float64
}

// Summary derives the checkout amounts from the current cart.
func (e *Engine) Summary() CheckoutSummary {
	subtotal := e.Subtotal()
	tax := float64(subtotal) * TaxRate
	return CheckoutSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    float64(subtotal) + tax,
	}
}

// Checkout is the terminal action of a session: it captures the summary,
// notifies, and clears the cart. No order record is created or transmitted.
func (e *Engine) Checkout() CheckoutSummary {
	summary := e.Summary()
	e.notifier.Notify("Order placed", "Thank you! Your order has been received.")
	e.ClearCart()
	return summary
}
