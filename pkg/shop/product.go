// Package shop owns the storefront state: catalog, basket, order draft,
// validation errors and the preview selection. All mutation happens
// here; everything else observes change events on the bus and reads the
// snapshots they carry.
package shop

// Product is a catalog item. Products are immutable once loaded; a nil
// Price marks a priceless item that can never be purchased.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Price       *int   `json:"price"`
}

// Priceless reports whether the product has no price and is therefore
// ineligible for the basket.
func (p Product) Priceless() bool { return p.Price == nil }

// PriceOf returns a Product price literal; a convenience for catalog
// fixtures and tests.
func PriceOf(v int) *int { return &v }

// categoryClasses maps the catalog's category vocabulary to the style
// modifier the card view appends.
var categoryClasses = map[string]string{
	"софт-скил":      "soft",
	"хард-скил":      "hard",
	"другое":         "other",
	"дополнительное": "additional",
	"кнопка":         "button",
}

// CategoryClass returns the style modifier for a category, or "other"
// for anything outside the fixed vocabulary.
func CategoryClass(category string) string {
	if c, ok := categoryClasses[category]; ok {
		return c
	}
	return "other"
}

// Basket references catalog items by id. Items is duplicate-free and
// Total is always the sum of the referenced products' prices.
type Basket struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

// Contains reports whether the basket references the product id.
func (b Basket) Contains(id string) bool {
	for _, it := range b.Items {
		if it == id {
			return true
		}
	}
	return false
}
