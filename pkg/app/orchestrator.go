// Package app wires the storefront together: state events to view
// re-renders, view intents to state mutators. The orchestrator is an
// explicit value with injected dependencies; it holds references to
// the widgets it composes and the identity of the modal content
// currently on screen, nothing else.
package app

import (
	"fmt"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/failfast"
	"github.com/nickovin/weblarek-go/pkg/logging"
	"github.com/nickovin/weblarek-go/pkg/shop"
	"github.com/nickovin/weblarek-go/pkg/view"
)

// Gateway is the order backend the orchestrator talks to.
type Gateway interface {
	FetchCatalog() ([]shop.Product, error)
	SubmitOrder(shop.Order) (shop.OrderResult, error)
}

// screen identifies what the modal is currently showing, so the right
// content is re-rendered when the state underneath it changes.
type screen int

const (
	screenNone screen = iota
	screenPreview
	screenBasket
	screenOrder
	screenContacts
	screenSuccess
	screenFailure
)

// Deps are the orchestrator's injected collaborators.
type Deps struct {
	Bus          *events.Bus
	State        *shop.AppData
	Gateway      Gateway
	Page         *view.Page
	Basket       *view.BasketView
	Modal        *view.Modal
	OrderForm    *view.OrderForm
	ContactsForm *view.ContactsForm
	Logger       logging.Logger
}

// Orchestrator owns the subscriptions binding state and views.
type Orchestrator struct {
	bus      *events.Bus
	state    *shop.AppData
	gateway  Gateway
	page     *view.Page
	basket   *view.BasketView
	modal    *view.Modal
	order    *view.OrderForm
	contacts *view.ContactsForm
	logger   logging.Logger

	showing  screen
	pageNode *view.Node
}

// New creates the orchestrator and registers all subscriptions.
func New(d Deps) *Orchestrator {
	failfast.NotNil(d.Bus, "bus")
	failfast.NotNil(d.State, "state")
	failfast.NotNil(d.Gateway, "gateway")
	failfast.NotNil(d.Page, "page")
	failfast.NotNil(d.Basket, "basket")
	failfast.NotNil(d.Modal, "modal")
	failfast.NotNil(d.OrderForm, "order form")
	failfast.NotNil(d.ContactsForm, "contacts form")
	failfast.NotNil(d.Logger, "logger")

	o := &Orchestrator{
		bus:      d.Bus,
		state:    d.State,
		gateway:  d.Gateway,
		page:     d.Page,
		basket:   d.Basket,
		modal:    d.Modal,
		order:    d.OrderForm,
		contacts: d.ContactsForm,
		logger:   d.Logger,
	}
	o.attach()
	return o
}

// Run fetches the catalog and seeds the state. Call once at startup.
func (o *Orchestrator) Run() error {
	items, err := o.gateway.FetchCatalog()
	if err != nil {
		return fmt.Errorf("app: fetch catalog: %w", err)
	}
	o.state.SetCatalog(items)
	return nil
}

// PageNode returns the last rendered page.
func (o *Orchestrator) PageNode() *view.Node { return o.pageNode }

func (o *Orchestrator) attach() {
	o.bus.Subscribe(shop.TopicCatalogChanged, func(_ string, _ any) {
		o.renderPage()
	})

	o.bus.Subscribe(shop.TopicCardSelect, func(_ string, payload any) {
		p := payload.(shop.Product)
		if err := o.state.SetPreview(p); err != nil {
			o.logger.Warnf("app: select %s: %v", p.ID, err)
		}
	})

	o.bus.Subscribe(shop.TopicPreviewChanged, func(_ string, payload any) {
		o.showPreview(payload.(shop.Product))
	})

	o.bus.Subscribe(shop.TopicBasketChanged, func(_ string, _ any) {
		o.renderPage()
		if o.showing == screenBasket {
			o.showBasket()
		}
	})

	o.bus.Subscribe(shop.TopicBasketOpen, func(_ string, _ any) {
		o.showBasket()
	})

	o.bus.Subscribe(shop.TopicOrderOpen, func(_ string, _ any) {
		// The payment step opens pre-set to card payment.
		if o.state.Draft().Payment == "" {
			o.state.SetOrderField(shop.FieldPayment, string(shop.PaymentCard))
		}
		o.showing = screenOrder
		o.modal.Render(o.order.Render(o.state.Draft(), o.state.Validation()))
	})

	fieldChange := func(_ string, payload any) {
		fc := payload.(shop.FieldChange)
		o.state.SetOrderField(fc.Field, fc.Value)
	}
	o.bus.Subscribe(shop.TopicOrderFields, fieldChange)
	o.bus.Subscribe(shop.TopicContactFields, fieldChange)

	o.bus.Subscribe(shop.TopicValidationChanged, func(_ string, payload any) {
		vs := payload.(shop.ValidationState)
		switch o.showing {
		case screenOrder:
			o.modal.Render(o.order.Render(o.state.Draft(), vs))
		case screenContacts:
			o.modal.Render(o.contacts.Render(o.state.Draft(), vs))
		}
	})

	o.bus.Subscribe(shop.TopicOrderSubmit, func(_ string, _ any) {
		o.showing = screenContacts
		o.modal.Render(o.contacts.Render(o.state.Draft(), o.state.Validation()))
	})

	o.bus.Subscribe(shop.TopicContactsSubmit, func(_ string, _ any) {
		o.submit()
	})

	o.bus.Subscribe(shop.TopicModalClose, func(_ string, _ any) {
		o.state.ClearPreview()
		o.showing = screenNone
	})
}

func (o *Orchestrator) renderPage() {
	items := o.state.Items()
	cards := make([]*view.Node, 0, len(items))
	for _, p := range items {
		item := p
		cards = append(cards, view.CatalogCard(item, view.CardActions{
			OnClick: func() {
				failfast.Err(o.bus.Emit(shop.TopicCardSelect, item))
			},
		}))
	}
	o.pageNode = o.page.Render(cards, len(o.state.Basket().Items))
}

func (o *Orchestrator) showPreview(p shop.Product) {
	o.showing = screenPreview
	o.modal.Render(view.PreviewCard(p, o.state.InBasket(p), view.CardActions{
		OnClick: func() { o.toggleBasket(p) },
	}))
}

// toggleBasket flips basket membership for the previewed product and
// refreshes the detail view so its button relabels.
func (o *Orchestrator) toggleBasket(p shop.Product) {
	if o.state.InBasket(p) {
		o.state.RemoveFromBasket(p)
	} else if err := o.state.AddToBasket(p); err != nil {
		// The buy button is disabled for priceless products; reaching
		// this branch means a stale or hand-crafted intent.
		o.logger.Warnf("app: add %s: %v", p.ID, err)
		return
	}
	o.showPreview(p)
}

func (o *Orchestrator) showBasket() {
	b := o.state.Basket()
	lines := make([]*view.Node, 0, len(b.Items))
	for i, id := range b.Items {
		p, ok := o.productByID(id)
		if !ok {
			continue
		}
		item := p
		lines = append(lines, view.BasketCard(item, i, view.CardActions{
			OnClick: func() { o.state.RemoveFromBasket(item) },
		}))
	}
	o.showing = screenBasket
	o.modal.Render(o.basket.Render(b, lines))
}

func (o *Orchestrator) productByID(id string) (shop.Product, bool) {
	for _, p := range o.state.Items() {
		if p.ID == id {
			return p, true
		}
	}
	return shop.Product{}, false
}

func (o *Orchestrator) submit() {
	order := o.state.Order()
	res, err := o.gateway.SubmitOrder(order)
	if err != nil {
		o.logger.Errorf("app: submit order: %v", err)
		fail := shop.SubmitFailure{Reason: "Заказ не прошёл, попробуйте ещё раз"}
		failfast.Err(o.bus.Emit(shop.TopicOrderFailed, fail))
		o.showing = screenFailure
		o.modal.Render(view.FailureCard(fail))
		return
	}

	o.state.ClearBasket()
	failfast.Err(o.bus.Emit(shop.TopicOrderDone, res))
	o.showing = screenSuccess
	o.modal.Render(view.SuccessCard(res, o.modal.Close))
}
