// internal/assistant/handlers/dispatcher_test.go
package handlers

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"shopping-assistant/internal/assistant/parser"
	"shopping-assistant/internal/catalog"
	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/config"
	"shopping-assistant/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, June 2, 2025.
var testNow = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

// Min == Max pins the shipping estimate to exactly 5 days, so response
// text is deterministic.
var testShipping = config.ShippingConfig{BaseFee: 5.99, MinDays: 5, MaxDays: 5}

func newTestCatalog(t *testing.T) catalog.Catalog {
	return catalog.NewMemoryStore(testShipping, clock.NewFake(testNow), rand.New(rand.NewSource(1)), logger.NewTestLogger(t))
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	log := logger.NewTestLogger(t)
	p := parser.New(clock.NewFake(testNow), log)
	return NewDispatcher(p, newTestCatalog(t), log)
}

func TestHandleQuery_Search(t *testing.T) {
	d := newTestDispatcher(t)

	response, err := d.HandleQuery(context.Background(),
		"Find a floral skirt under $140 in size S. Is it in stock, and can I apply a discount code 'SAVE10'?")
	require.NoError(t, err)
	assert.Equal(t,
		"I found a Floral Summer Skirt in size S for $35.99 at StoreA. "+
			"It's in stock (10 available). "+
			"With discount code 'SAVE10', the final price would be $32.39.",
		response)
}

func TestHandleQuery_SearchWithDelivery(t *testing.T) {
	d := newTestDispatcher(t)

	// "by Monday" asked on a Monday means a week out, so the 5-day
	// estimate fits.
	response, err := d.HandleQuery(context.Background(),
		"I need white sneakers (size 8) for under $80 that can arrive by Monday.")
	require.NoError(t, err)
	assert.Equal(t,
		"I found a White Athletic Sneakers in size 8 for $65.99 at StoreB. "+
			"It's in stock (5 available). "+
			"It can be delivered by Saturday, June 7 (estimated 5 days) for $5.99 shipping.",
		response)
}

func TestHandleQuery_Comparison(t *testing.T) {
	d := newTestDispatcher(t)

	response, err := d.HandleQuery(context.Background(),
		"I found a 'casual denim jacket' at $79 on StoreA. Any better deals?")
	require.NoError(t, err)
	assert.Equal(t,
		"Here are the prices for the casual denim jacket across stores:\n- StoreB: $75.99\n",
		response)
}

func TestHandleQuery_Return(t *testing.T) {
	d := newTestDispatcher(t)

	response, err := d.HandleQuery(context.Background(),
		"I want to buy a cocktail dress from StoreB, but only if returns are hassle-free. Do they accept returns?")
	require.NoError(t, err)
	assert.Equal(t,
		"StoreB accepts returns within 14 days. Return shipping fee applies. Return shipping fee applies",
		response)
}

func TestHandleQuery_ReturnWithoutStoreFallsBackToSearch(t *testing.T) {
	d := newTestDispatcher(t)

	response, err := d.HandleQuery(context.Background(), "Can I return a cocktail dress?")
	require.NoError(t, err)
	assert.Equal(t,
		"I found a Cocktail Dress in size S for $89.99 at StoreB. It's in stock (15 available).",
		response)
}

func TestHandleQuery_ComparisonWithoutProductFallsBackToSearch(t *testing.T) {
	d := newTestDispatcher(t)

	response, err := d.HandleQuery(context.Background(), "Any better deals?")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find any products matching your criteria.", response)
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
