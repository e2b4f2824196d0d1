package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		items   []Item
		wantErr error
	}{
		{
			name: "valid catalog",
			items: []Item{
				{Name: "Milk", UnitPrice: decimal.RequireFromString("3.50")},
				{Name: "Bread", UnitPrice: decimal.RequireFromString("2.00")},
			},
		},
		{
			name:  "free item is allowed",
			items: []Item{{Name: "Sample", UnitPrice: decimal.Zero}},
		},
		{
			name:    "empty name",
			items:   []Item{{Name: "", UnitPrice: decimal.RequireFromString("1.00")}},
			wantErr: ErrEmptyItemName,
		},
		{
			name:    "negative price",
			items:   []Item{{Name: "Milk", UnitPrice: decimal.RequireFromString("-0.01")}},
			wantErr: ErrNegativePrice,
		},
		{
			name: "duplicate name",
			items: []Item{
				{Name: "Milk", UnitPrice: decimal.RequireFromString("3.50")},
				{Name: "Milk", UnitPrice: decimal.RequireFromString("3.00")},
			},
			wantErr: ErrDuplicateItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	item, ok := c.Lookup("Milk")
	if !ok {
		t.Fatal("Lookup(Milk) not found")
	}
	if item.UnitPrice.StringFixed(2) != "3.50" {
		t.Errorf("Milk price = %s, want 3.50", item.UnitPrice.StringFixed(2))
	}

	if _, ok := c.Lookup("Caviar"); ok {
		t.Error("Lookup(Caviar) found an item not in the catalog")
	}
}

func TestItemsPreserveOrderAndDoNotAlias(t *testing.T) {
	c := Default()

	wantOrder := []string{"Milk", "Bread", "Eggs", "Cheese"}
	items := c.Items()
	if len(items) != len(wantOrder) {
		t.Fatalf("got %d items, want %d", len(items), len(wantOrder))
	}
	for i, want := range wantOrder {
		if items[i].Name != want {
			t.Fatalf("items order = %v, want %v", items, wantOrder)
		}
	}

	items[0].Name = "Mutated"
	if fresh := c.Items(); fresh[0].Name != "Milk" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		data := `[{"name":"Tea","unit_price":"1.25"},{"name":"Coffee","unit_price":4.75}]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		c, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if c.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", c.Len())
		}
		coffee, ok := c.Lookup("Coffee")
		if !ok || coffee.UnitPrice.StringFixed(2) != "4.75" {
			t.Errorf("Coffee = %+v (found=%v), want 4.75", coffee, ok)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Load of missing file succeeded")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load of malformed file succeeded")
		}
	})
}
