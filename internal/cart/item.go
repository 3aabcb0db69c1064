package cart

import (
	"encoding/json"
	"strings"
	"time"
)

// Item is a single line in a shopping cart: a product reference, a quantity,
// and the time the product was first added. A cart holds at most one Item per
// product id.
type Item struct {
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

type itemJSON struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	AddedAt   string `json:"addedAt"`
}

// MarshalJSON encodes the item in the persisted wire shape with an ISO-8601
// timestamp.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		AddedAt:   i.AddedAt.UTC().Format(time.RFC3339Nano),
	})
}

// UnmarshalJSON decodes the persisted wire shape.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	added, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw.AddedAt))
	if err != nil {
		return err
	}
	i.ProductID = strings.TrimSpace(raw.ProductID)
	i.Quantity = raw.Quantity
	i.AddedAt = added.UTC()
	return nil
}

// The transition functions below are pure: they take the current item list
// and return the next one without touching storage. The Store applies
// persistence as a separate post-commit step so transitions stay testable in
// isolation.

func applyAdd(items []Item, productID string, quantity int, now time.Time) []Item {
	next := cloneItems(items)
	for idx := range next {
		if next[idx].ProductID == productID {
			next[idx].Quantity += quantity
			return next
		}
	}
	return append(next, Item{ProductID: productID, Quantity: quantity, AddedAt: now.UTC()})
}

func applyRemove(items []Item, productID string) []Item {
	next := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID {
			continue
		}
		next = append(next, item)
	}
	return next
}

func applyUpdateQuantity(items []Item, productID string, quantity int) []Item {
	if quantity <= 0 {
		return applyRemove(items, productID)
	}
	next := cloneItems(items)
	for idx := range next {
		if next[idx].ProductID == productID {
			next[idx].Quantity = quantity
		}
	}
	return next
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return []Item{}
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
