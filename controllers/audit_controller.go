package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/logging"
	"github.com/blogem/consulta-notas/models"
	"github.com/blogem/consulta-notas/services"
)

// AuditController renders the audit log
type AuditController struct {
	services *services.Services
	log      *zap.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, log *zap.Logger) *AuditController {
	return &AuditController{
		services: services,
		log:      log,
	}
}

// Index handles GET /admin/consultas
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.GetAllConsultas(r.Context())
	if err != nil {
		logging.FromContext(r.Context(), c.log).Error("failed to load audit log", zap.Error(err))
		renderTemplateWithStatus(w, http.StatusInternalServerError, "consultas.html", models.PageData{
			Title:       "Consultas registradas",
			CurrentPage: "consultas",
			Error:       "No fue posible leer el registro de consultas.",
		})
		return
	}

	renderTemplate(w, "consultas.html", models.PageData{
		Title:       "Consultas registradas",
		CurrentPage: "consultas",
		Data:        entries,
	})
}
