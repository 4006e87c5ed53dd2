package view

import (
	"fmt"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/failfast"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

func emit(bus *events.Bus, topic string, payload any) {
	failfast.Err(bus.Emit(topic, payload))
}

// Page renders the storefront shell: the catalog gallery and the
// header basket button with its item-count badge.
type Page struct {
	bus *events.Bus
}

// NewPage binds the page widget to the bus it emits intents on.
func NewPage(bus *events.Bus) *Page {
	failfast.NotNil(bus, "bus")
	return &Page{bus: bus}
}

// Render produces the page from the already-rendered catalog cards and
// the basket size. The basket button emits basket:open.
func (pg *Page) Render(catalog []*Node, counter int) *Node {
	basketButton := El("button", "header__basket",
		TextEl("span", "header__basket-counter", fmt.Sprintf("%d", counter)),
	).OnClick(func() { emit(pg.bus, shop.TopicBasketOpen, nil) })

	return El("div", "page",
		El("header", "header", basketButton),
		El("main", "gallery", catalog...),
	)
}
