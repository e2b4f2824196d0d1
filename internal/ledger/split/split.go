// Package split computes payment views over the shared cart: one grand
// total for the whole group, and a per-participant breakdown that charges
// item costs to whoever added them and divides the delivery fee evenly
// across the participants who contributed anything.
//
// All functions are pure: they never mutate their inputs and return the
// same result for the same input.
package split

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when a payment view is requested but nothing
// has been added to the cart.
var ErrEmptyCart = errors.New("cart has no contributions")

// Contribution is one participant's quantity of an item.
type Contribution struct {
	Participant string
	Quantity    int
}

// Item is one cart entry: the unit price frozen at first add and the
// per-participant quantities recorded against it.
type Item struct {
	Name          string
	UnitPrice     decimal.Decimal
	Contributions []Contribution
}

// TotalQuantity returns the item's quantity summed across all participants.
func (i Item) TotalQuantity() int {
	total := 0
	for _, c := range i.Contributions {
		total += c.Quantity
	}
	return total
}

// GroupTotal computes the single aggregate amount for the whole group:
// the sum of every item's unit price times its total quantity, plus the
// delivery fee exactly once.
func GroupTotal(items []Item, deliveryFee decimal.Decimal) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrEmptyCart
	}

	total := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.TotalQuantity()))
		total = total.Add(item.UnitPrice.Mul(qty))
	}
	return total.Add(deliveryFee), nil
}

// PerParticipantShares computes what each participant owes. Every name in
// participants appears in the result, at zero if they added nothing. The
// delivery fee is divided evenly across the contributing set only:
// participants whose accrued item cost is strictly positive. Amounts are
// exact decimals; rounding to the minor currency unit is the caller's
// concern.
func PerParticipantShares(items []Item, participants []string, deliveryFee decimal.Decimal) (map[string]decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shares := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		shares[p] = decimal.Zero
	}

	for _, item := range items {
		for _, c := range item.Contributions {
			qty := decimal.NewFromInt(int64(c.Quantity))
			shares[c.Participant] = shares[c.Participant].Add(item.UnitPrice.Mul(qty))
		}
	}

	var contributors []string
	for _, p := range participants {
		if shares[p].IsPositive() {
			contributors = append(contributors, p)
		}
	}

	if len(contributors) > 0 {
		feeShare := deliveryFee.Div(decimal.NewFromInt(int64(len(contributors))))
		for _, p := range contributors {
			shares[p] = shares[p].Add(feeShare)
		}
	}

	return shares, nil
}
