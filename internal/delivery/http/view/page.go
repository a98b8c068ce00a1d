package view

import (
	deliverycontext "meuapp/internal/delivery/context"
	"meuapp/internal/delivery/http/flash"
	"meuapp/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// csrfContextKey is where echo's CSRF middleware leaves the token.
const csrfContextKey = "csrf"

// Pages fills in the values every page needs before handing off to echo's renderer.
type Pages struct {
	flashes *flash.Store
}

// NewPages creates a Pages helper.
func NewPages(flashes *flash.Store) *Pages {
	return &Pages{flashes: flashes}
}

// Render renders name with data plus the values the layout reads: pending flash
// messages followed by extra, the CSRF token, the request ID and, when user is
// not nil, the signed-in email. Forms read field errors from "erros".
func (p *Pages) Render(c echo.Context, status int, name string, user *entity.Credential, data map[string]any, extra ...flash.Message) error {
	ctx := make(map[string]any, len(data)+5)
	for k, v := range data {
		ctx[k] = v
	}
	if _, ok := ctx["erros"]; !ok {
		ctx["erros"] = map[string][]string{}
	}

	messages := p.flashes.Pop(c)
	ctx["flashes"] = append(messages, extra...)

	if token, ok := c.Get(csrfContextKey).(string); ok {
		ctx["csrf_token"] = token
	}
	ctx["request_id"] = deliverycontext.RequestID(c)
	if user != nil {
		ctx["usuario"] = user.Email
	}

	return c.Render(status, name, ctx)
}
