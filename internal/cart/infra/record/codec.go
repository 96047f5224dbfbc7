// Package record encodes carts into the stored "cart" record: a JSON array
// of {id, name, price, image, quantity} objects with no version field.
package record

import (
	"fmt"

	"github.com/dwikikusuma/plantshop/internal/cart/app"
	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Key is the record key a cart is stored under.
const Key = "cart"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Codec converts between carts and stored records. Prices are stored as
// decimals without a currency, so decoded prices take Currency.
type Codec struct {
	Currency string
}

func NewCodec(currency string) Codec {
	return Codec{Currency: currency}
}

func (c Codec) Encode(cart domain.Cart) ([]byte, error) {
	items := make([]item, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, item{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price.Decimal(),
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal cart: %w", err)
	}
	return payload, nil
}

// Decode does no validation beyond what the JSON decoder enforces.
func (c Codec) Decode(payload []byte) (domain.Cart, error) {
	var items []item
	if err := json.Unmarshal(payload, &items); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %v", app.ErrCorruptCart, err)
	}

	var cart domain.Cart
	for _, it := range items {
		cart.Items = append(cart.Items, domain.LineItem{
			ID:   it.ID,
			Name: it.Name,
			Price: domain.Money{
				Currency: c.Currency,
				Amount:   it.Price.Shift(2).Round(0).IntPart(),
			},
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	return cart, nil
}
