package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/nswailem/sharedcart/internal/ledger/split"
	"github.com/nswailem/sharedcart/pkg/response"
)

// Handler handles HTTP requests for the shared cart
type Handler struct {
	ledger *Ledger
}

// NewHandler creates a new cart handler
func NewHandler(ledger *Ledger) *Handler {
	return &Handler{ledger: ledger}
}

// Routes returns the router for cart endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/participants", func(r chi.Router) {
		r.Post("/", h.RegisterParticipant)
		r.Get("/", h.ListParticipants)
		r.Get("/{name}/subtotal", h.ParticipantSubtotal)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ResetCart)
		r.Post("/items", h.AddItem)
		r.Post("/items/remove", h.RemoveItem)
		r.Get("/total", h.GroupTotal)
		r.Get("/shares", h.Shares)
	})

	r.Get("/catalog", h.GetCatalog)

	return r
}

// RegisterParticipant handles POST /participants
// @Summary      Register a participant
// @Description  Add a housemate to the cart by name
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body RegisterParticipantRequest true "Participant registration request"
// @Success      201 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /participants [post]
func (h *Handler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var req RegisterParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.ledger.RegisterParticipant(req.Name); err != nil {
		if errors.Is(err, ErrDuplicateParticipant) {
			response.Conflict(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	slog.Info("participant registered", "name", req.Name)
	response.JSON(w, http.StatusCreated, map[string]string{"message": "Participant registered successfully"})
}

// ListParticipants handles GET /participants
// @Summary      List participants
// @Description  Get all registered participants in registration order
// @Tags         participants
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]string}
// @Router       /participants [get]
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.ledger.Participants())
}

// ParticipantSubtotal handles GET /participants/{name}/subtotal
// @Summary      Get a participant's subtotal
// @Description  Get one participant's item cost before the delivery fee
// @Tags         participants
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} response.APIResponse{data=SubtotalResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /participants/{name}/subtotal [get]
func (h *Handler) ParticipantSubtotal(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		response.BadRequest(w, "Invalid participant name")
		return
	}

	subtotal, err := h.ledger.ParticipantSubtotal(name)
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, &SubtotalResponse{
		Participant: name,
		Subtotal:    money(subtotal),
	})
}

// GetCatalog handles GET /catalog
// @Summary      List catalog items
// @Description  Get the available products and their unit prices
// @Tags         catalog
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]CatalogItemResponse}
// @Router       /catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, ToCatalogResponse(h.ledger.Catalog().Items()))
}

// GetCart handles GET /cart
// @Summary      Get the cart
// @Description  Get the current cart snapshot with per-participant quantities
// @Tags         cart
// @Produce      json
// @Success      200 {object} response.APIResponse{data=CartResponse}
// @Router       /cart [get]
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.ledger.Snapshot().ToResponse())
}

// AddItem handles POST /cart/items
// @Summary      Add an item contribution
// @Description  Add a quantity of a catalog item to the cart for a participant
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body CartItemRequest true "Contribution to add"
// @Success      200 {object} response.APIResponse{data=CartResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /cart/items [post]
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.ledger.AddContribution(req.Item, req.Participant, req.Quantity); err != nil {
		if errors.Is(err, ErrUnknownParticipant) || errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, h.ledger.Snapshot().ToResponse())
}

// RemoveItem handles POST /cart/items/remove
// @Summary      Remove an item contribution
// @Description  Remove a quantity of an item from the cart for a participant
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body CartItemRequest true "Contribution to remove"
// @Success      200 {object} response.APIResponse{data=CartResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /cart/items/remove [post]
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.ledger.RemoveContribution(req.Item, req.Participant, req.Quantity); err != nil {
		if errors.Is(err, ErrItemNotFound) || errors.Is(err, ErrNoSuchContribution) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, h.ledger.Snapshot().ToResponse())
}

// ResetCart handles DELETE /cart
// @Summary      Reset the cart
// @Description  Clear all contributions; with participants=true, also clear the participant set
// @Tags         cart
// @Produce      json
// @Param        participants query bool false "Also clear participants"
// @Success      200 {object} response.APIResponse
// @Router       /cart [delete]
func (h *Handler) ResetCart(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("participants") == "true" {
		h.ledger.ResetAll()
		slog.Info("cart and participants reset")
		response.JSON(w, http.StatusOK, map[string]string{"message": "Cart and participants reset"})
		return
	}

	h.ledger.ResetCart()
	slog.Info("cart reset")
	response.JSON(w, http.StatusOK, map[string]string{"message": "Cart reset"})
}

// GroupTotal handles GET /cart/total
// @Summary      Get the whole-group total
// @Description  Get the grand total for everyone, delivery fee included
// @Tags         cart
// @Produce      json
// @Success      200 {object} response.APIResponse{data=TotalResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /cart/total [get]
func (h *Handler) GroupTotal(w http.ResponseWriter, r *http.Request) {
	view := h.ledger.Snapshot()
	total, err := split.GroupTotal(view.SplitItems(), view.DeliveryFee)
	if err != nil {
		if errors.Is(err, split.ErrEmptyCart) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute total")
		return
	}

	response.JSON(w, http.StatusOK, &TotalResponse{Total: money(total)})
}

// Shares handles GET /cart/shares
// @Summary      Get per-participant shares
// @Description  Get what each participant owes, with the delivery fee split across contributors
// @Tags         cart
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ShareResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /cart/shares [get]
func (h *Handler) Shares(w http.ResponseWriter, r *http.Request) {
	view := h.ledger.Snapshot()
	shares, err := split.PerParticipantShares(view.SplitItems(), view.Participants, view.DeliveryFee)
	if err != nil {
		if errors.Is(err, split.ErrEmptyCart) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute shares")
		return
	}

	// Registration order keeps the breakdown stable across calls.
	out := make([]ShareResponse, 0, len(view.Participants))
	for _, p := range view.Participants {
		out = append(out, ShareResponse{Participant: p, Amount: money(shares[p])})
	}

	response.JSON(w, http.StatusOK, out)
}
