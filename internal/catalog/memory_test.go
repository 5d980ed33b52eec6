// internal/catalog/memory_test.go
package catalog

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/config"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, June 2, 2025.
var testNow = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

var testShipping = config.ShippingConfig{BaseFee: 5.99, MinDays: 5, MaxDays: 7}

func newTestStore(t *testing.T) *MemoryStore {
	return NewMemoryStore(testShipping, clock.NewFake(testNow), rand.New(rand.NewSource(1)), logger.NewTestLogger(t))
}

func TestMemoryStore_SearchProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("keyword, price, color and size filters", func(t *testing.T) {
		results, err := s.SearchProducts(ctx, "floral skirt", floatPtr(140), strPtr("floral"), strPtr("S"))
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Floral Summer Skirt", results[0].Name)
		assert.Equal(t, 35.99, results[0].Price)
	})

	t.Run("price ceiling is inclusive", func(t *testing.T) {
		results, err := s.SearchProducts(ctx, "denim jacket", floatPtr(80), nil, nil)
		require.NoError(t, err)
		// the $82.99 StoreC jacket is excluded, the $80 one kept
		require.Len(t, results, 2)
		assert.Equal(t, 80.0, results[0].Price)
		assert.Equal(t, 75.99, results[1].Price)
	})

	t.Run("results keep storage order", func(t *testing.T) {
		results, err := s.SearchProducts(ctx, "denim jacket", nil, nil, nil)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, []string{"StoreA", "StoreB", "StoreC"},
			[]string{results[0].Store, results[1].Store, results[2].Store})
	})

	t.Run("color filter is case-insensitive exact match", func(t *testing.T) {
		results, err := s.SearchProducts(ctx, "sneakers", nil, strPtr("white"), nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "White Athletic Sneakers", results[0].Name)
	})

	t.Run("stopwords alone match nothing", func(t *testing.T) {
		results, err := s.SearchProducts(ctx, "the in with", nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		results, err := s.SearchProducts(ctx, "", nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestMemoryStore_ComparePrices(t *testing.T) {
	s := newTestStore(t)

	prices, err := s.ComparePrices(context.Background(), "casual denim jacket")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"StoreA": 80,
		"StoreB": 75.99,
		"StoreC": 82.99,
	}, prices)

	prices, err = s.ComparePrices(context.Background(), "unicycle")
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestMemoryStore_ReturnPolicy(t *testing.T) {
	s := newTestStore(t)

	policy, err := s.ReturnPolicy(context.Background(), "StoreB")
	require.NoError(t, err)
	require.NotNil(t, policy)
	assert.Equal(t, 14, policy.DaysAllowed)
	assert.False(t, policy.FreeReturns)
	assert.Equal(t, "Return shipping fee applies", policy.Conditions)

	policy, err = s.ReturnPolicy(context.Background(), "StoreZ")
	require.NoError(t, err)
	assert.Nil(t, policy)
}

func TestMemoryStore_ApplyDiscount(t *testing.T) {
	s := newTestStore(t)

	discounted, err := s.ApplyDiscount(context.Background(), 100, "SAVE10")
	require.NoError(t, err)
	require.NotNil(t, discounted)
	assert.InDelta(t, 90.0, *discounted, 1e-9)

	discounted, err = s.ApplyDiscount(context.Background(), 100, "SUMMER20")
	require.NoError(t, err)
	require.NotNil(t, discounted)
	assert.InDelta(t, 80.0, *discounted, 1e-9)

	discounted, err = s.ApplyDiscount(context.Background(), 100, "UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, discounted)
}

func TestMemoryStore_ShippingEstimate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("estimated days stay in range", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			details, err := s.ShippingEstimate(ctx, demoProducts[0], nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, details.EstimatedDays, 5)
			assert.LessOrEqual(t, details.EstimatedDays, 7)
			assert.Equal(t, 5.99, details.Cost)
			assert.True(t, details.Available)
		}
	})

	t.Run("availability against a target date", func(t *testing.T) {
		// pin the draw to exactly 5 days
		pinned := NewMemoryStore(config.ShippingConfig{BaseFee: 5.99, MinDays: 5, MaxDays: 5},
			clock.NewFake(testNow), rand.New(rand.NewSource(1)), logger.NewNoOpLogger())

		late := testNow.AddDate(0, 0, 10)
		details, err := pinned.ShippingEstimate(ctx, demoProducts[0], &late)
		require.NoError(t, err)
		assert.Equal(t, 5, details.EstimatedDays)
		assert.True(t, details.Available)

		soon := testNow.AddDate(0, 0, 3)
		details, err = pinned.ShippingEstimate(ctx, demoProducts[0], &soon)
		require.NoError(t, err)
		assert.False(t, details.Available)
	})
}

func TestMemoryStoreFromFixture(t *testing.T) {
	f := &Fixture{
		Products:       demoProducts[:2],
		ReturnPolicies: []models.ReturnPolicy{},
		PromoCodes:     map[string]float64{"TEN": 0.10},
	}
	s := NewMemoryStoreFromFixture(f, testShipping, clock.NewFake(testNow), rand.New(rand.NewSource(1)), logger.NewNoOpLogger())

	results, err := s.SearchProducts(context.Background(), "sneakers", nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	discounted, err := s.ApplyDiscount(context.Background(), 50, "TEN")
	require.NoError(t, err)
	require.NotNil(t, discounted)
	assert.InDelta(t, 45.0, *discounted, 1e-9)
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
