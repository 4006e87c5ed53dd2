package view

import (
	"fmt"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/failfast"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

// BasketView renders the basket modal content: item lines, the total
// and the checkout button.
type BasketView struct {
	bus *events.Bus
}

// NewBasketView binds the basket widget to the bus.
func NewBasketView(bus *events.Bus) *BasketView {
	failfast.NotNil(bus, "bus")
	return &BasketView{bus: bus}
}

// Render produces the basket from its snapshot and the pre-rendered
// line cards. The checkout button emits order:open and is disabled
// while the basket is empty.
func (v *BasketView) Render(b shop.Basket, lines []*Node) *Node {
	var list *Node
	if len(lines) > 0 {
		list = El("ul", "basket__list", lines...)
	} else {
		list = El("ul", "basket__list", TextEl("p", "basket__empty", "Корзина пуста"))
	}

	order := TextEl("button", "basket__button", "Оформить").
		OnClick(func() { emit(v.bus, shop.TopicOrderOpen, nil) })
	order.Disabled = len(lines) == 0

	return El("div", "basket",
		TextEl("h2", "modal__title", "Корзина"),
		list,
		El("div", "modal__actions",
			order,
			TextEl("span", "basket__price", fmt.Sprintf("%d синапсов", b.Total)),
		),
	)
}
