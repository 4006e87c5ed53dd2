package view

import (
	"fmt"

	"github.com/nickovin/weblarek-go/pkg/shop"
)

// CardActions carries the click behaviour the orchestrator injects
// into a card; the card itself never touches the state.
type CardActions struct {
	OnClick func()
}

func priceText(p shop.Product) string {
	if p.Priceless() {
		return "Бесценно"
	}
	return fmt.Sprintf("%d синапсов", *p.Price)
}

func categoryEl(p shop.Product) *Node {
	return TextEl("span", "card__category card__category_"+shop.CategoryClass(p.Category), p.Category)
}

// CatalogCard renders a product as a clickable gallery card.
func CatalogCard(p shop.Product, actions CardActions) *Node {
	card := El("button", "card",
		categoryEl(p),
		TextEl("h2", "card__title", p.Title),
		TextEl("img", "card__image", p.Image),
		TextEl("span", "card__price", priceText(p)),
	)
	return card.OnClick(actions.OnClick)
}

// PreviewCard renders the product detail view. The action button
// toggles basket membership and is labelled from the current state;
// for a priceless product it stays disabled.
func PreviewCard(p shop.Product, inBasket bool, actions CardActions) *Node {
	label := "Добавить в корзину"
	if inBasket {
		label = "Удалить из корзины"
	}
	button := TextEl("button", "card__button", label).OnClick(actions.OnClick)
	button.Disabled = p.Priceless()

	return El("div", "card card_full",
		TextEl("img", "card__image", p.Image),
		El("div", "card__column",
			categoryEl(p),
			TextEl("h2", "card__title", p.Title),
			TextEl("p", "card__text", p.Description),
			El("div", "card__row",
				button,
				TextEl("span", "card__price", priceText(p)),
			),
		),
	)
}

// BasketCard renders one basket line; clicking its delete control
// removes the item.
func BasketCard(p shop.Product, index int, actions CardActions) *Node {
	return El("li", "basket__item card card_compact",
		TextEl("span", "basket__item-index", fmt.Sprintf("%d", index+1)),
		TextEl("span", "card__title", p.Title),
		TextEl("span", "card__price", priceText(p)),
		TextEl("button", "basket__item-delete", "").OnClick(actions.OnClick),
	)
}
