package shop

import (
	"errors"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/failfast"
)

var (
	// ErrPriceless rejects basket insertion of a product without a price.
	ErrPriceless = errors.New("shop: priceless product cannot be added to basket")
	// ErrUnknownProduct rejects operations on products absent from the catalog.
	ErrUnknownProduct = errors.New("shop: product is not in the catalog")
)

// AppData is the single owner of all storefront state. Every mutator
// validates its input, updates in-memory state, then emits the change
// event carrying a fresh snapshot. Mutators never emit when nothing
// changed.
//
// AppData is not safe for concurrent use: the storefront core is
// single-threaded by design, all mutation happens on one call stack.
type AppData struct {
	bus     *events.Bus
	items   []Product
	basket  []string
	preview string
	draft   OrderDraft
}

// NewAppData creates an empty state bound to the bus.
func NewAppData(bus *events.Bus) *AppData {
	failfast.NotNil(bus, "bus")
	return &AppData{bus: bus}
}

func (a *AppData) emit(topic string, payload any) {
	// Topic constants are known-good; an emit error here is a wiring bug.
	failfast.Err(a.bus.Emit(topic, payload))
}

// SetCatalog replaces the catalog wholesale and emits catalog:changed.
// Basket ids orphaned by the replacement are pruned so the basket never
// references a product outside the current catalog.
func (a *AppData) SetCatalog(items []Product) {
	a.items = append([]Product(nil), items...)

	kept := a.basket[:0]
	for _, id := range a.basket {
		if _, ok := a.product(id); ok {
			kept = append(kept, id)
		}
	}
	pruned := len(kept) != len(a.basket)
	a.basket = kept

	a.emit(TopicCatalogChanged, a.Items())
	if pruned {
		a.emit(TopicBasketChanged, a.Basket())
	}
}

// Items returns a copy of the catalog.
func (a *AppData) Items() []Product {
	return append([]Product(nil), a.items...)
}

func (a *AppData) product(id string) (Product, bool) {
	for _, p := range a.items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SetPreview selects a product for the detail view and emits
// preview:changed. The product must exist in the catalog.
func (a *AppData) SetPreview(p Product) error {
	item, ok := a.product(p.ID)
	if !ok {
		return ErrUnknownProduct
	}
	a.preview = item.ID
	a.emit(TopicPreviewChanged, item)
	return nil
}

// ClearPreview drops the preview selection; called when the detail
// view is dismissed.
func (a *AppData) ClearPreview() {
	a.preview = ""
}

// Preview returns the currently previewed product, if any.
func (a *AppData) Preview() (Product, bool) {
	if a.preview == "" {
		return Product{}, false
	}
	return a.product(a.preview)
}

// AddToBasket inserts the product id and emits basket:changed.
// Priceless products are rejected even though the view disables their
// purchase button; adding an id already present is a silent no-op.
func (a *AppData) AddToBasket(p Product) error {
	item, ok := a.product(p.ID)
	if !ok {
		return ErrUnknownProduct
	}
	// Check the catalog entry, not the argument: a hand-built Product
	// value must not smuggle a priceless item in.
	if item.Priceless() {
		return ErrPriceless
	}
	if a.InBasket(p) {
		return nil
	}
	a.basket = append(a.basket, item.ID)
	a.emit(TopicBasketChanged, a.Basket())
	return nil
}

// RemoveFromBasket removes the product id if present. Removing an
// absent id is a no-op and emits nothing.
func (a *AppData) RemoveFromBasket(p Product) {
	for i, id := range a.basket {
		if id == p.ID {
			a.basket = append(a.basket[:i], a.basket[i+1:]...)
			a.emit(TopicBasketChanged, a.Basket())
			return
		}
	}
}

// ClearBasket empties the basket, resets the order draft and emits
// basket:changed.
func (a *AppData) ClearBasket() {
	a.basket = nil
	a.draft = OrderDraft{}
	a.emit(TopicBasketChanged, a.Basket())
}

// InBasket reports whether the product is in the basket.
func (a *AppData) InBasket(p Product) bool {
	return a.Basket().Contains(p.ID)
}

// Basket returns the basket snapshot with its derived total.
func (a *AppData) Basket() Basket {
	total := 0
	for _, id := range a.basket {
		if p, ok := a.product(id); ok && p.Price != nil {
			total += *p.Price
		}
	}
	return Basket{Items: append([]string(nil), a.basket...), Total: total}
}

// SetOrderField sets one draft field, recomputes the full errors map
// and emits validation:changed. An unknown field name is a wiring bug
// and panics.
func (a *AppData) SetOrderField(field Field, value string) {
	switch field {
	case FieldPayment:
		a.draft.Payment = PaymentMethod(value)
	case FieldAddress:
		a.draft.Address = value
	case FieldEmail:
		a.draft.Email = value
	case FieldPhone:
		a.draft.Phone = value
	default:
		failfast.If(false, "unknown order field %q", field)
	}
	a.emit(TopicValidationChanged, a.Validation())
}

// Draft returns the current order draft.
func (a *AppData) Draft() OrderDraft { return a.draft }

// Validation recomputes the errors map and the two step-validity
// signals from the current draft.
func (a *AppData) Validation() ValidationState {
	errs := a.draft.validate()
	_, payment := errs[FieldPayment]
	_, address := errs[FieldAddress]
	_, email := errs[FieldEmail]
	_, phone := errs[FieldPhone]
	return ValidationState{
		Errors:        errs,
		OrderValid:    !payment && !address,
		ContactsValid: !email && !phone,
	}
}

// Order builds the outbound submission request from the draft and the
// current basket. The projection is computed on demand; the draft
// itself never stores items or a total.
func (a *AppData) Order() Order {
	b := a.Basket()
	return Order{
		Payment: a.draft.Payment,
		Email:   a.draft.Email,
		Phone:   a.draft.Phone,
		Address: a.draft.Address,
		Items:   b.Items,
		Total:   b.Total,
	}
}
