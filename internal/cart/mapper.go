package cart

import (
	"mealdash-be/internal/product"

	"github.com/shopspring/decimal"
)

// buildView assembles the read model from joined rows and computes the
// total as an exact decimal sum of unit price times quantity.
func buildView(rows []cartRow) *View {
	view := &View{
		Items:      make([]*ItemView, 0, len(rows)),
		TotalPrice: decimal.Zero,
	}

	for _, r := range rows {
		view.ID = r.CartID
		view.UserID = r.UserID

		subtotal := r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))

		view.Items = append(view.Items, &ItemView{
			ID:       r.ItemID,
			Quantity: r.Quantity,
			Subtotal: subtotal,
			Product: &product.Product{
				ID:          r.ProductID,
				Name:        r.ProductName,
				Image:       r.ProductImage,
				Price:       r.Price,
				Description: r.Description,
				StoreID:     r.StoreID,
			},
		})

		view.TotalPrice = view.TotalPrice.Add(subtotal)
	}

	return view
}
