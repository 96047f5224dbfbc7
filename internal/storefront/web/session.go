package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName  = "plantshop"
	sessionKeyID = "sid"
	ctxShopperID = "shopper_id"
)

func newCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// shopper makes sure every request carries a shopper id, minting one on
// the first visit. The id keys the shopper's cart record.
func (s *Server) shopper(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(sessionName, c)
		if err != nil {
			// Cookies signed with an older secret decode to a fresh session.
			s.log.Debug("session decode failed", "err", err)
		}
		if sess == nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
		}

		id, _ := sess.Values[sessionKeyID].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[sessionKeyID] = id
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return err
			}
		}

		c.Set(ctxShopperID, id)
		return next(c)
	}
}

func shopperID(c echo.Context) string {
	id, _ := c.Get(ctxShopperID).(string)
	return id
}

// addFlashes queues messages for the next rendered page.
func addFlashes(c echo.Context, messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	for _, m := range messages {
		sess.AddFlash(m)
	}
	return sess.Save(c.Request(), c.Response())
}

// takeFlashes pops queued messages. It must run before the body is written.
func takeFlashes(c echo.Context) []string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			out = append(out, m)
		}
	}
	_ = sess.Save(c.Request(), c.Response())
	return out
}
