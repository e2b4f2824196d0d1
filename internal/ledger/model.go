package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/nswailem/sharedcart/internal/ledger/split"
)

// Contribution records how many units of an item one participant added.
type Contribution struct {
	Participant string `json:"participant"`
	Quantity    int    `json:"quantity"`
}

// ItemView is one cart entry in a snapshot: the item, the unit price frozen
// at first add, and the ordered per-participant quantities.
type ItemView struct {
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Contributions []Contribution  `json:"contributions"`
}

// TotalQuantity returns the item's quantity summed across all participants.
func (iv ItemView) TotalQuantity() int {
	total := 0
	for _, c := range iv.Contributions {
		total += c.Quantity
	}
	return total
}

// View is an immutable snapshot of the ledger. It shares no state with the
// ledger that produced it, so callers may hold it across later mutations.
type View struct {
	Items        []ItemView      `json:"items"`
	Participants []string        `json:"participants"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
}

// Empty reports whether the view holds no contributions at all.
func (v View) Empty() bool {
	return len(v.Items) == 0
}

// SplitItems converts the view's items to the split package's input type.
func (v View) SplitItems() []split.Item {
	items := make([]split.Item, len(v.Items))
	for i, iv := range v.Items {
		contributions := make([]split.Contribution, len(iv.Contributions))
		for j, c := range iv.Contributions {
			contributions[j] = split.Contribution{
				Participant: c.Participant,
				Quantity:    c.Quantity,
			}
		}
		items[i] = split.Item{
			Name:          iv.Name,
			UnitPrice:     iv.UnitPrice,
			Contributions: contributions,
		}
	}
	return items
}
