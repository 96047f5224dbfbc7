// Package web is the storefront's HTTP transport: the product listing and
// cart pages, their form actions, and a JSON snapshot of the cart.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/plantshop/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/plantshop/internal/checkout/app"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Options struct {
	Currency      string
	SessionSecret string
	SecureCookies bool
	// Ready is consulted by /readyz. Nil means always ready.
	Ready func(ctx context.Context) error
}

type Server struct {
	echo     *echo.Echo
	log      *slog.Logger
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	currency string
	ready    func(ctx context.Context) error
}

func NewServer(log *slog.Logger, catalog *catalogapp.Service, cart *cartapp.Service, checkout *checkoutapp.Service, opts Options) (*Server, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		echo:     echo.New(),
		log:      log,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		currency: opts.Currency,
		ready:    opts.Ready,
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = r
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(s.requestLog)

	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/readyz", s.readyz)

	shop := e.Group("", session.Middleware(newCookieStore(opts.SessionSecret, opts.SecureCookies)), s.shopper)
	shop.GET("/", s.listing)
	shop.GET("/products.html", s.listing)
	shop.POST("/cart/items", s.addItem)
	shop.GET("/cart.html", s.cartPage)
	shop.POST("/cart/items/:id", s.itemControl)
	shop.POST("/checkout", s.submitCheckout)
	shop.GET("/api/cart", s.cartJSON)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) readyz(c echo.Context) error {
	if s.ready == nil {
		return c.NoContent(http.StatusOK)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := s.ready(ctx); err != nil {
		s.log.Warn("not ready", slog.Any("err", err))
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		s.log.LogAttrs(req.Context(), slog.LevelInfo, "http request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", c.Response().Status),
			slog.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
