package cart

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastybites/internal/domain"
)

var (
	cheeseburger = domain.MenuItem{ID: 1, Name: "Classic Cheeseburger", Description: "Juicy", Price: 1299, Category: "Burgers"}
	margherita   = domain.MenuItem{ID: 2, Name: "Margherita Pizza", Description: "Wood-fired", Price: 1450, Category: "Pizza"}
)

type recordingNotifier struct {
	titles []string
}

func (n *recordingNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine(t *testing.T) (*Engine, *MemoryStore, *recordingNotifier) {
	t.Helper()
	store := NewMemoryStore()
	notifier := &recordingNotifier{}
	return New(store, notifier, testLogger()), store, notifier
}

func TestAddToCart_MergesRepeatedIDs(t *testing.T) {
	engine, _, notifier := newTestEngine(t)

	engine.AddToCart(cheeseburger, 1)
	engine.AddToCart(cheeseburger, 2)
	engine.AddToCart(cheeseburger, 1)

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 4, engine.Count())
	assert.Len(t, notifier.titles, 3)
}

func TestAddToCart_QuantityBelowOneDefaultsToOne(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	engine.AddToCart(cheeseburger, 0)

	assert.Equal(t, 1, engine.Count())
}

func TestAddToCart_PreservesInsertionOrder(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	engine.AddToCart(margherita, 1)
	engine.AddToCart(cheeseburger, 1)
	engine.AddToCart(margherita, 1)

	lines := engine.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].ID)
	assert.Equal(t, 1, lines[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectedLines int
		expectedCount int
	}{
		{name: "absolute_set", quantity: 5, expectedLines: 1, expectedCount: 5},
		{name: "zero_removes_line", quantity: 0, expectedLines: 0, expectedCount: 0},
		{name: "negative_removes_line", quantity: -5, expectedLines: 0, expectedCount: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			engine, _, _ := newTestEngine(t)
			engine.AddToCart(cheeseburger, 3)

			engine.UpdateQuantity(cheeseburger.ID, testCase.quantity)

			assert.Len(t, engine.Lines(), testCase.expectedLines)
			assert.Equal(t, testCase.expectedCount, engine.Count())
		})
	}
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	engine.AddToCart(cheeseburger, 2)

	engine.RemoveFromCart(cheeseburger.ID)
	assert.Empty(t, engine.Lines())

	engine.RemoveFromCart(cheeseburger.ID)
	assert.Empty(t, engine.Lines())
	assert.Equal(t, 0, engine.Count())
}

func TestSubtotal_AlwaysConsistentWithLines(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	engine.AddToCart(cheeseburger, 2)
	assert.Equal(t, 2598, engine.Subtotal())

	engine.AddToCart(margherita, 1)
	assert.Equal(t, 4048, engine.Subtotal())

	engine.UpdateQuantity(cheeseburger.ID, 1)
	assert.Equal(t, 2749, engine.Subtotal())

	engine.ClearCart()
	assert.Equal(t, 0, engine.Subtotal())
	assert.Equal(t, 0, engine.Count())
}

func TestPersistence_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	first := New(store, &recordingNotifier{}, testLogger())
	first.AddToCart(cheeseburger, 2)
	first.AddToCart(margherita, 1)

	second := New(store, &recordingNotifier{}, testLogger())
	assert.Equal(t, first.Lines(), second.Lines())
	assert.Equal(t, 3, second.Count())
	assert.Equal(t, 4048, second.Subtotal())
}

func TestRehydrate_CorruptStateFallsBackToEmptyCart(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write(CartKey, []byte("{not json")))

	engine := New(store, &recordingNotifier{}, testLogger())

	assert.Empty(t, engine.Lines())
	assert.Equal(t, 0, engine.Count())
}

func TestClearCart_ErasesPersistedState(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	engine.AddToCart(cheeseburger, 1)

	raw, err := store.Read(CartKey)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	engine.ClearCart()

	raw, err = store.Read(CartKey)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestCheckout_Scenario(t *testing.T) {
	engine, _, notifier := newTestEngine(t)

	engine.AddToCart(cheeseburger, 2)
	engine.AddToCart(margherita, 1)
	engine.UpdateQuantity(cheeseburger.ID, 1)

	lines := engine.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 2, engine.Count())
	assert.Equal(t, 2749, engine.Subtotal())

	summary := engine.Checkout()
	assert.Equal(t, 2749, summary.Subtotal)
	assert.InDelta(t, 219.92, summary.Tax, 0.001)
	assert.InDelta(t, 2968.92, summary.Total, 0.001)

	assert.Equal(t, 0, engine.Count())
	assert.Empty(t, engine.Lines())
	assert.Contains(t, notifier.titles, "Order placed")
}
