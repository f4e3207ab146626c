package controllers

import (
	"net/http"

	"github.com/blogem/consulta-notas/models"
)

// HomeController serves the status page and health check
type HomeController struct{}

// NewHomeController creates a new home controller
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "home.html", models.PageData{
		Title:       "Consulta de Notas – Backend",
		CurrentPage: "home",
	})
}

// Health handles GET /health
func (c *HomeController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "consulta-notas",
	})
}
