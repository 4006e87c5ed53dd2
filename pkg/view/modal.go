package view

import (
	"fmt"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/failfast"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

// Modal is the single content holder every detail, basket and form
// view is rendered into. It keeps only its current content, which is
// view chrome, not application state.
type Modal struct {
	bus     *events.Bus
	content *Node
}

// NewModal binds the modal to the bus.
func NewModal(bus *events.Bus) *Modal {
	failfast.NotNil(bus, "bus")
	return &Modal{bus: bus}
}

// Render swaps in new content, emits modal:open and returns the full
// modal node with its close control.
func (m *Modal) Render(content *Node) *Node {
	m.content = content
	emit(m.bus, shop.TopicModalOpen, nil)
	return El("div", "modal modal_active",
		El("div", "modal__container",
			TextEl("button", "modal__close", "").OnClick(m.Close),
			El("div", "modal__content", content),
		),
	)
}

// Close drops the content and emits modal:close.
func (m *Modal) Close() {
	m.content = nil
	emit(m.bus, shop.TopicModalClose, nil)
}

// Current returns the content last rendered into the modal, or nil
// when it is closed.
func (m *Modal) Current() *Node { return m.content }

// Open reports whether the modal is showing content.
func (m *Modal) Open() bool { return m.content != nil }

// SuccessCard renders the order confirmation with the submission
// result.
func SuccessCard(res shop.OrderResult, onClose func()) *Node {
	return El("div", "order-success",
		TextEl("h2", "order-success__title", "Заказ оформлен"),
		TextEl("p", "order-success__description", fmt.Sprintf("Списано %d синапсов", res.Total)),
		TextEl("button", "order-success__close", "За новыми покупками!").OnClick(onClose),
	)
}

// FailureCard renders a submission failure inside the modal, leaving
// the user free to close it; there is no retry control.
func FailureCard(f shop.SubmitFailure) *Node {
	return El("div", "order-failure",
		TextEl("h2", "order-failure__title", "Не удалось оформить заказ"),
		TextEl("p", "order-failure__description", f.Reason),
	)
}
