package models

// LineItem is one distinct product in the cart with its aggregated quantity.
// Price is in whole lei.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// Subtotal is Price × Quantity.
func (li LineItem) Subtotal() int64 {
	return li.Price * li.Quantity
}

// Cart is the ordered list of line items, in insertion order.
type Cart []LineItem

// Add increments the quantity of the item named name, or appends a new item
// with quantity 1 and an id obtained from newID. The receiver is not modified.
func (c Cart) Add(name string, price int64, newID func() string) Cart {
	out := c.clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Quantity++
			return out
		}
	}
	return append(out, LineItem{ID: newID(), Name: name, Price: price, Quantity: 1})
}

// Remove drops the first item with the given id. Unknown ids leave the cart
// unchanged. The receiver is not modified.
func (c Cart) Remove(id string) Cart {
	out := c.clone()
	for i := range out {
		if out[i].ID == id {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// Total is the sum of Price × Quantity over all items.
func (c Cart) Total() int64 {
	var total int64
	for _, li := range c {
		total += li.Subtotal()
	}
	return total
}

// Count is the sum of quantities.
func (c Cart) Count() int64 {
	var n int64
	for _, li := range c {
		n += li.Quantity
	}
	return n
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return out
}
