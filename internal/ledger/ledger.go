package ledger

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/nswailem/sharedcart/internal/catalog"
)

// Common errors
var (
	ErrInvalidName          = errors.New("participant name must be non-empty and contain only letters and spaces")
	ErrDuplicateParticipant = errors.New("participant already registered")
	ErrUnknownParticipant   = errors.New("participant not registered")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrItemNotFound         = errors.New("item not found")
	ErrNoSuchContribution   = errors.New("participant has not added this item")
)

// cartItem is the mutable ledger entry for one item: the unit price frozen
// at first add and each participant's positive quantity, in first-add order.
type cartItem struct {
	unitPrice decimal.Decimal
	order     []string
	qty       map[string]int
}

// Ledger is the authoritative record of registered participants and their
// item contributions. All public methods are safe for concurrent use; each
// call is atomic with respect to the ledger's internal state.
type Ledger struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	fee      decimal.Decimal
	names    []string
	itemKeys []string
	items    map[string]*cartItem
}

// New creates an empty ledger over the given catalog with a fixed delivery
// fee. A nil catalog or negative fee is a programming error and panics.
func New(cat *catalog.Catalog, deliveryFee decimal.Decimal) *Ledger {
	if cat == nil {
		panic("ledger: nil catalog")
	}
	if deliveryFee.IsNegative() {
		panic("ledger: negative delivery fee")
	}
	return &Ledger{
		catalog: cat,
		fee:     deliveryFee,
		items:   make(map[string]*cartItem),
	}
}

// Catalog returns the catalog this ledger was built over.
func (l *Ledger) Catalog() *catalog.Catalog {
	return l.catalog
}

// RegisterParticipant adds a name to the participant set. The name is
// trimmed of surrounding whitespace before validation; registration order
// is preserved and observable through Snapshot and Participants.
func (l *Ledger) RegisterParticipant(name string) error {
	name = strings.TrimSpace(name)
	if !validName(name) {
		return ErrInvalidName
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.registered(name) {
		return ErrDuplicateParticipant
	}
	l.names = append(l.names, name)
	return nil
}

// AddContribution records that a participant added qty units of a catalog
// item to the shared cart. Repeat adds accumulate.
func (l *Ledger) AddContribution(item, participant string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.registered(participant) {
		return ErrUnknownParticipant
	}

	entry, ok := l.items[item]
	if !ok {
		product, found := l.catalog.Lookup(item)
		if !found {
			return ErrItemNotFound
		}
		// The price is frozen here; later catalog changes must not
		// affect contributions already in the cart.
		entry = &cartItem{
			unitPrice: product.UnitPrice,
			qty:       make(map[string]int),
		}
		l.items[item] = entry
		l.itemKeys = append(l.itemKeys, item)
	}

	if _, has := entry.qty[participant]; !has {
		entry.order = append(entry.order, participant)
	}
	entry.qty[participant] += qty
	return nil
}

// RemoveContribution decrements a participant's quantity for an item,
// clamped at zero: removing more than the participant holds removes what
// remains. Entries disappear once their quantity reaches zero, and the item
// disappears once no participant holds any of it.
func (l *Ledger) RemoveContribution(item, participant string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.items[item]
	if !ok {
		return ErrItemNotFound
	}
	current, has := entry.qty[participant]
	if !has {
		return ErrNoSuchContribution
	}

	current -= qty
	if current > 0 {
		entry.qty[participant] = current
		return nil
	}

	delete(entry.qty, participant)
	entry.order = remove(entry.order, participant)
	if len(entry.qty) == 0 {
		delete(l.items, item)
		l.itemKeys = remove(l.itemKeys, item)
	}
	return nil
}

// ResetCart clears all contributions but keeps the registered participants.
func (l *Ledger) ResetCart() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = make(map[string]*cartItem)
	l.itemKeys = nil
}

// ResetAll clears all contributions and the participant set.
func (l *Ledger) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = make(map[string]*cartItem)
	l.itemKeys = nil
	l.names = nil
}

// Snapshot returns a deep-copied view of the ledger: items in first-add
// order, each with its frozen unit price and ordered contributions, plus
// the participant list and delivery fee.
func (l *Ledger) Snapshot() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	view := View{
		Items:        make([]ItemView, 0, len(l.itemKeys)),
		Participants: append([]string(nil), l.names...),
		DeliveryFee:  l.fee,
	}
	for _, name := range l.itemKeys {
		entry := l.items[name]
		iv := ItemView{
			Name:          name,
			UnitPrice:     entry.unitPrice,
			Contributions: make([]Contribution, 0, len(entry.order)),
		}
		for _, p := range entry.order {
			iv.Contributions = append(iv.Contributions, Contribution{
				Participant: p,
				Quantity:    entry.qty[p],
			})
		}
		view.Items = append(view.Items, iv)
	}
	return view
}

// Participants returns the registered names in registration order.
func (l *Ledger) Participants() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.names...)
}

// ParticipantSubtotal returns one participant's item cost before the
// delivery fee.
func (l *Ledger) ParticipantSubtotal(name string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.registered(name) {
		return decimal.Zero, ErrUnknownParticipant
	}

	subtotal := decimal.Zero
	for _, key := range l.itemKeys {
		entry := l.items[key]
		if qty, has := entry.qty[name]; has {
			subtotal = subtotal.Add(entry.unitPrice.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return subtotal, nil
}

// registered reports whether name is in the participant set.
// Caller must hold l.mu.
func (l *Ledger) registered(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// validName reports whether a trimmed name is non-empty and made of
// letters and whitespace only.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func remove(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
