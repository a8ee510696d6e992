package cart

import (
	"github.com/sizzilia/storefront/internal/models"
)

// LineItem is one product row in the cart.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Cart holds the per-session shopping state. Display order is insertion
// order; total and item count are derived values, recomputed after every
// mutation so they can never drift from the line items. The cart lives on
// one session and is mutated sequentially, so there is no locking.
type Cart struct {
	items     []LineItem
	index     map[string]int
	total     float64
	itemCount int
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem puts quantity units of p into the cart, merging into the existing
// line item when the product is already present. Quantities below 1 are
// treated as 1.
func (c *Cart) AddItem(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	id := p.ID.Hex()
	if i, ok := c.index[id]; ok {
		c.items[i].Quantity += quantity
	} else {
		c.index[id] = len(c.items)
		c.items = append(c.items, LineItem{
			ID:       id,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: quantity,
			Image:    p.Image,
		})
	}

	c.recompute()
}

// SetQuantity replaces the quantity of the line item with the given id.
// Anything below 1 removes the item instead; a quantity of zero is never
// stored. Unknown ids are a no-op.
func (c *Cart) SetQuantity(id string, quantity int) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	if quantity < 1 {
		c.RemoveItem(id)
		return
	}
	c.items[i].Quantity = quantity
	c.recompute()
}

func (c *Cart) RemoveItem(id string) {
	i, ok := c.index[id]
	if !ok {
		return
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}

	c.recompute()
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[string]int)
	c.total = 0
	c.itemCount = 0
}

// Items returns the line items in display order. The slice is a copy.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Item(id string) (LineItem, bool) {
	if i, ok := c.index[id]; ok {
		return c.items[i], true
	}
	return LineItem{}, false
}

func (c *Cart) Total() float64 { return c.total }

func (c *Cart) ItemCount() int { return c.itemCount }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) recompute() {
	var total float64
	var count int
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	c.total = total
	c.itemCount = count
}
