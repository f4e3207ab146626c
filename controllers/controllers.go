package controllers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/services"
	"github.com/blogem/consulta-notas/templates"
)

// renderTemplate parses the layout with pageTemplate and renders it with the provided data
func renderTemplate(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, pageTemplate, data)
}

// renderTemplateWithStatus parses the layout with pageTemplate and renders it with the provided status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, pageTemplate string, data interface{}) error {
	tmpl := template.New("layout.html").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})

	if _, err := tmpl.ParseFS(templates.FS, "layout.html", pageTemplate); err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render fully before the status line goes out
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}

// writeJSON encodes v as the response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

// Controllers holds all controller instances
type Controllers struct {
	Home   *HomeController
	Grades *GradeController
	Audit  *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, log *zap.Logger) *Controllers {
	return &Controllers{
		Home:   NewHomeController(),
		Grades: NewGradeController(services, log),
		Audit:  NewAuditController(services, log),
	}
}
