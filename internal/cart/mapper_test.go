package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildView_Total(t *testing.T) {
	rows := []cartRow{
		{
			CartID: 3, UserID: 7, ItemID: 1, ProductID: 5, Quantity: 2,
			ProductName: "Cheeseburger",
			Price:       decimal.RequireFromString("250.00"),
		},
		{
			CartID: 3, UserID: 7, ItemID: 2, ProductID: 6, Quantity: 3,
			ProductName: "Fries",
			Price:       decimal.RequireFromString("120.50"),
		},
	}

	view := buildView(rows)

	require.Len(t, view.Items, 2)
	assert.Equal(t, uint(3), view.ID)
	assert.Equal(t, uint(7), view.UserID)

	// 2*250.00 + 3*120.50 = 861.50, exactly.
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("861.50")),
		"got %s", view.TotalPrice)
	assert.True(t, view.Items[0].Subtotal.Equal(decimal.RequireFromString("500.00")))
}

func TestBuildView_AddRemovePairRestoresTotal(t *testing.T) {
	base := []cartRow{
		{
			CartID: 3, UserID: 7, ItemID: 1, ProductID: 5, Quantity: 1,
			Price: decimal.RequireFromString("99.99"),
		},
	}
	withExtra := append([]cartRow{}, base...)
	withExtra = append(withExtra, cartRow{
		CartID: 3, UserID: 7, ItemID: 2, ProductID: 8, Quantity: 4,
		Price: decimal.RequireFromString("10.01"),
	})

	before := buildView(base).TotalPrice
	during := buildView(withExtra).TotalPrice
	after := buildView(base).TotalPrice

	assert.False(t, before.Equal(during))
	assert.True(t, before.Equal(after))
}

func TestBuildView_Empty(t *testing.T) {
	view := buildView(nil)

	assert.Empty(t, view.Items)
	assert.True(t, view.TotalPrice.Equal(decimal.Zero))
}
