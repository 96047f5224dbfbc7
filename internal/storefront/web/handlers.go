package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	checkoutdomain "github.com/dwikikusuma/plantshop/internal/checkout/domain"
	"github.com/dwikikusuma/plantshop/internal/storefront/view"
	"github.com/labstack/echo/v4"
)

func (s *Server) openCart(c echo.Context) (*cartapp.Session, error) {
	return s.cart.Open(c.Request().Context(), shopperID(c))
}

func (s *Server) listing(c echo.Context) error {
	sess, err := s.openCart(c)
	if err != nil {
		return err
	}

	category := strings.ToLower(strings.TrimSpace(c.QueryParam("category")))
	products, err := s.catalog.ListProducts(c.Request().Context(), category)
	if err != nil {
		return err
	}

	page := view.Listing(products, sess.Cart, category)
	page.Flashes = takeFlashes(c)
	return c.Render(http.StatusOK, pageProducts, page)
}

// addItem backs the listing page's "Add to Cart" buttons.
func (s *Server) addItem(c echo.Context) error {
	sess, err := s.openCart(c)
	if err != nil {
		return err
	}

	// A bad id is an unknown product: nothing to add.
	if id, err := strconv.Atoi(c.FormValue("product_id")); err == nil {
		if err := s.cart.AddToCart(c.Request().Context(), sess, id); err != nil {
			return err
		}
	}

	target := "/products.html"
	if cat := strings.TrimSpace(c.FormValue("category")); cat != "" {
		target += "?category=" + url.QueryEscape(cat)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (s *Server) cartPage(c echo.Context) error {
	sess, err := s.openCart(c)
	if err != nil {
		return err
	}

	page := view.Cart(sess.Cart, s.currency, "")
	page.Flashes = takeFlashes(c)
	return c.Render(http.StatusOK, pageCart, page)
}

// itemControl is the single entry point for every line item button; the
// submitted control picks the operation.
func (s *Server) itemControl(c echo.Context) error {
	sess, err := s.openCart(c)
	if err != nil {
		return err
	}

	id, idErr := strconv.Atoi(c.Param("id"))
	control, ok := view.ParseControl(c.FormValue("control"))
	if idErr != nil || !ok {
		return c.Redirect(http.StatusSeeOther, "/cart.html")
	}

	ctx := c.Request().Context()
	switch control {
	case view.ControlIncrease:
		err = s.cart.IncreaseQuantity(ctx, sess, id)
	case view.ControlDecrease:
		err = s.cart.DecreaseQuantity(ctx, sess, id)
	case view.ControlDelete:
		err = s.cart.RemoveFromCart(ctx, sess, id)
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/cart.html")
}

func (s *Server) submitCheckout(c echo.Context) error {
	dialog := &formDialog{upiID: c.FormValue("upi-id")}
	options := paymentOptions(c.FormValue("payment-method"))

	state := s.checkout.Checkout(c.Request().Context(), dialog, options)
	s.log.Debug("checkout finished", "state", state.String(), "shopper", shopperID(c))

	if err := addFlashes(c, dialog.alerts); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/cart.html")
}

// paymentOptions rebuilds the radio group from the one value a browser
// submits. Values outside the known list are kept so checkout can still
// route them.
func paymentOptions(selected string) []checkoutdomain.PaymentOption {
	options := checkoutdomain.Options(selected)
	if selected == "" {
		return options
	}
	for _, o := range options {
		if o.Checked {
			return options
		}
	}
	return append(options, checkoutdomain.PaymentOption{Value: selected, Checked: true})
}

type cartItemJSON struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

type cartJSON struct {
	Items      []cartItemJSON `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalCost  string         `json:"total_cost"`
}

func (s *Server) cartJSON(c echo.Context) error {
	sess, err := s.openCart(c)
	if err != nil {
		return err
	}

	out := cartJSON{Items: make([]cartItemJSON, 0, len(sess.Cart.Items))}
	for _, it := range sess.Cart.Items {
		out.Items = append(out.Items, cartItemJSON{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price.Decimal().StringFixed(2),
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	out.TotalItems = sess.Cart.Count()
	out.TotalCost = sess.Cart.Total().Decimal().StringFixed(2)
	return c.JSON(http.StatusOK, out)
}
