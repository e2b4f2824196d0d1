package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrEmptyItemName = errors.New("catalog item name cannot be empty")
	ErrNegativePrice = errors.New("catalog item price cannot be negative")
	ErrDuplicateItem = errors.New("catalog item name already defined")
)

// Item is a purchasable product with a fixed unit price.
type Item struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Catalog is the static, ordered list of products available to the cart.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	items []Item
	index map[string]int
}

// New builds a catalog from an ordered item list. A bad catalog is a
// configuration mistake, not a runtime condition, so construction fails
// instead of silently dropping entries.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if item.Name == "" {
			return nil, ErrEmptyItemName
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrNegativePrice, item.Name)
		}
		if _, exists := c.index[item.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name)
		}
		c.index[item.Name] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Load reads a catalog from a JSON file containing an array of items.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return New(items)
}

// Default returns the built-in grocery catalog.
func Default() *Catalog {
	c, err := New([]Item{
		{Name: "Milk", UnitPrice: decimal.RequireFromString("3.50")},
		{Name: "Bread", UnitPrice: decimal.RequireFromString("2.00")},
		{Name: "Eggs", UnitPrice: decimal.RequireFromString("2.50")},
		{Name: "Cheese", UnitPrice: decimal.RequireFromString("4.00")},
	})
	if err != nil {
		panic(err) // unreachable: the built-in catalog is valid
	}
	return c
}

// Lookup returns the item with the given name.
func (c *Catalog) Lookup(name string) (Item, bool) {
	i, ok := c.index[name]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the catalog in insertion order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
