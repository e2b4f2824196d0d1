package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/nswailem/sharedcart/internal/catalog"
)

// RegisterParticipantRequest represents the request to register a participant
type RegisterParticipantRequest struct {
	Name string `json:"name" validate:"required"`
}

// CartItemRequest represents the request to add or remove a contribution.
// Quantity defaults to 1 when omitted.
type CartItemRequest struct {
	Item        string `json:"item" validate:"required"`
	Participant string `json:"participant" validate:"required"`
	Quantity    int    `json:"quantity,omitempty"`
}

// ContributionResponse represents one participant's quantity of an item
type ContributionResponse struct {
	Participant string `json:"participant"`
	Quantity    int    `json:"quantity"`
}

// CartItemResponse represents one cart entry with its line total
type CartItemResponse struct {
	Name          string                 `json:"name"`
	UnitPrice     string                 `json:"unit_price"`
	Quantity      int                    `json:"quantity"`
	LineTotal     string                 `json:"line_total"`
	Contributions []ContributionResponse `json:"contributions"`
}

// CartResponse represents the full cart snapshot
type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	Participants []string           `json:"participants"`
	DeliveryFee  string             `json:"delivery_fee"`
}

// CatalogItemResponse represents a purchasable product
type CatalogItemResponse struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
}

// TotalResponse represents the whole-group total
type TotalResponse struct {
	Total string `json:"total"`
}

// SubtotalResponse represents one participant's pre-fee subtotal
type SubtotalResponse struct {
	Participant string `json:"participant"`
	Subtotal    string `json:"subtotal"`
}

// ShareResponse represents one participant's share of the full cost
type ShareResponse struct {
	Participant string `json:"participant"`
	Amount      string `json:"amount"`
}

// Monetary amounts render as fixed two-decimal strings only at this layer;
// everything beneath works on exact decimals.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ToResponse converts a snapshot View to a CartResponse DTO
func (v View) ToResponse() *CartResponse {
	items := make([]CartItemResponse, len(v.Items))
	for i, item := range v.Items {
		contributions := make([]ContributionResponse, len(item.Contributions))
		for j, c := range item.Contributions {
			contributions[j] = ContributionResponse{
				Participant: c.Participant,
				Quantity:    c.Quantity,
			}
		}
		qty := item.TotalQuantity()
		items[i] = CartItemResponse{
			Name:          item.Name,
			UnitPrice:     money(item.UnitPrice),
			Quantity:      qty,
			LineTotal:     money(item.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))),
			Contributions: contributions,
		}
	}
	return &CartResponse{
		Items:        items,
		Participants: v.Participants,
		DeliveryFee:  money(v.DeliveryFee),
	}
}

// ToCatalogResponse converts catalog items to response DTOs
func ToCatalogResponse(items []catalog.Item) []CatalogItemResponse {
	out := make([]CatalogItemResponse, len(items))
	for i, item := range items {
		out[i] = CatalogItemResponse{
			Name:      item.Name,
			UnitPrice: money(item.UnitPrice),
		}
	}
	return out
}
