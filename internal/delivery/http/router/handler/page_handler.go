// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"meuapp/internal/delivery/http/response"
	"meuapp/internal/delivery/http/view"
	"meuapp/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	landingTitle    = "Bem-vindo ao meu site Dinâmico!"
	landingGreeting = "Aqui usamos Flask e Jinja2 para criar está página"
	accountTitle    = "Minha conta"
	dateLayout      = "02/01/2006"
)

var landingSkills = []string{"Python", "Flask", "HTML", "Jinja2", "batata"}

// PageHandler serves the content pages.
type PageHandler struct {
	pages *view.Pages
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(pages *view.Pages) *PageHandler {
	return &PageHandler{pages: pages}
}

// Index renders the landing page.
func (h *PageHandler) Index(c echo.Context, user *entity.Credential) error {
	return h.pages.Render(c, http.StatusOK, view.PageIndex, user, map[string]any{
		"titulo":        landingTitle,
		"saudacao":      landingGreeting,
		"habilidades":   landingSkills,
		"mostrar_lista": true,
	})
}

// Account renders the signed-in user's page. It is only reachable through RequireAuthenticated.
func (h *PageHandler) Account(c echo.Context, user *entity.Credential) error {
	return h.pages.Render(c, http.StatusOK, view.PageAccount, user, map[string]any{
		"titulo":       accountTitle,
		"membro_desde": user.CreatedAt.Format(dateLayout),
	})
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
