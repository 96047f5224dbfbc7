// Package view maps cart and catalog state to page descriptions. Nothing
// here touches HTTP or storage; templates render whatever these functions
// return.
package view

import (
	cartdomain "github.com/dwikikusuma/plantshop/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/plantshop/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/plantshop/internal/checkout/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	LabelAdd   = "Add to Cart"
	LabelAdded = "Added to Cart"

	EmptyMessage  = "Your cart is empty"
	EmptyLinkText = "Shop Now"
	EmptyLinkHref = "products.html"
)

var categories = []catalogdomain.Category{
	catalogdomain.CategoryIndoor,
	catalogdomain.CategorySucculent,
	catalogdomain.CategoryFlowering,
}

// Casers keep state, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

type ProductCard struct {
	ID            int
	Name          string
	Price         string
	Image         string
	Category      string
	CategoryTitle string
	AddDisabled   bool
	AddLabel      string
}

type CategoryLink struct {
	Value  string
	Title  string
	Active bool
}

type ListingPage struct {
	CartCount  int
	Categories []CategoryLink
	Cards      []ProductCard
	Flashes    []string
}

// Listing builds the product grid. A product already in the cart gets a
// disabled "Added to Cart" control; quantities change on the cart page.
func Listing(products []catalogdomain.Product, cart cartdomain.Cart, category string) ListingPage {
	page := ListingPage{
		CartCount: cart.Count(),
		Cards:     make([]ProductCard, 0, len(products)),
	}

	for _, c := range categories {
		page.Categories = append(page.Categories, CategoryLink{
			Value:  string(c),
			Title:  title(string(c)),
			Active: string(c) == category,
		})
	}

	for _, p := range products {
		inCart := cart.Has(p.ID)
		label := LabelAdd
		if inCart {
			label = LabelAdded
		}
		page.Cards = append(page.Cards, ProductCard{
			ID:            p.ID,
			Name:          p.Name,
			Price:         FormatMoney(p.Price.Currency, p.Price.Amount),
			Image:         p.Image,
			Category:      string(p.Category),
			CategoryTitle: title(string(p.Category)),
			AddDisabled:   inCart,
			AddLabel:      label,
		})
	}
	return page
}

type ItemView struct {
	ID       int
	Image    string
	Name     string
	Price    string
	Quantity int
}

type Summary struct {
	TotalItems int
	TotalCost  string
}

type EmptyState struct {
	Message  string
	LinkText string
	LinkHref string
}

type PaymentOptionView struct {
	Value   string
	Label   string
	UPI     bool
	Checked bool
}

type CartPage struct {
	CartCount  int
	Empty      bool
	EmptyState EmptyState
	Items      []ItemView
	Summary    Summary
	Payments   []PaymentOptionView
	Flashes    []string
}

// Cart builds the cart page: either the line items or the empty-state
// placeholder, plus the summary and payment options.
func Cart(cart cartdomain.Cart, currency string, checked string) CartPage {
	page := CartPage{
		CartCount: cart.Count(),
		Summary:   summarize(cart, currency),
	}

	for _, opt := range checkoutdomain.Options(checked) {
		page.Payments = append(page.Payments, PaymentOptionView{
			Value:   opt.Value,
			Label:   checkoutdomain.Label(opt.Value),
			UPI:     checkoutdomain.IsUPI(opt.Value),
			Checked: opt.Checked,
		})
	}

	if cart.IsEmpty() {
		page.Empty = true
		page.EmptyState = EmptyState{
			Message:  EmptyMessage,
			LinkText: EmptyLinkText,
			LinkHref: EmptyLinkHref,
		}
		return page
	}

	page.Items = make([]ItemView, 0, len(cart.Items))
	for _, it := range cart.Items {
		page.Items = append(page.Items, ItemView{
			ID:       it.ID,
			Image:    it.Image,
			Name:     it.Name,
			Price:    FormatMoney(it.Price.Currency, it.Price.Amount),
			Quantity: it.Quantity,
		})
	}
	return page
}

func summarize(cart cartdomain.Cart, currency string) Summary {
	total := cart.Total()
	if total.Currency == "" {
		total.Currency = currency
	}
	return Summary{
		TotalItems: cart.Count(),
		TotalCost:  FormatMoney(total.Currency, total.Amount),
	}
}
