// internal/assistant/handlers/returns_test.go
package handlers

import (
	"context"
	"testing"

	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnHandler_KnownStores(t *testing.T) {
	h := NewReturnHandler(newTestCatalog(t), logger.NewTestLogger(t))

	tests := []struct {
		store    string
		expected string
	}{
		{
			store:    "StoreA",
			expected: "StoreA accepts returns within 30 days. Returns are free. Items must be unworn with tags",
		},
		{
			store:    "StoreB",
			expected: "StoreB accepts returns within 14 days. Return shipping fee applies. Return shipping fee applies",
		},
		{
			store:    "StoreC",
			expected: "StoreC accepts returns within 21 days. Returns are free. Free returns within 21 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.store, func(t *testing.T) {
			response, err := h.Execute(context.Background(), models.Intent{
				QueryType: models.QueryTypeReturn,
				Store:     strPtr(tt.store),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, response)
		})
	}
}

func TestReturnHandler_UnknownStore(t *testing.T) {
	h := NewReturnHandler(newTestCatalog(t), logger.NewTestLogger(t))

	response, err := h.Execute(context.Background(), models.Intent{
		QueryType: models.QueryTypeReturn,
		Store:     strPtr("StoreZ"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find return policy information for StoreZ", response)
}
