package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/clientctx"
	"github.com/blogem/consulta-notas/logging"
	"github.com/blogem/consulta-notas/services"
)

const (
	missingCodigoMessage = "El parámetro codigo es obligatorio."
	lookupErrorMessage   = "No fue posible consultar la nota en este momento."
)

// notaFoundResponse is the body of a successful lookup
type notaFoundResponse struct {
	Encontrado bool   `json:"encontrado"`
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Nota       string `json:"nota"`
}

// notaErrorResponse is the body of every unsuccessful lookup
type notaErrorResponse struct {
	Encontrado bool   `json:"encontrado"`
	Mensaje    string `json:"mensaje"`
}

// GradeController handles grade lookup requests
type GradeController struct {
	services *services.Services
	log      *zap.Logger
}

// NewGradeController creates a new grade controller
func NewGradeController(services *services.Services, log *zap.Logger) *GradeController {
	return &GradeController{
		services: services,
		log:      log,
	}
}

// GetNota handles GET /api/nota?codigo=...
func (c *GradeController) GetNota(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["codigo"]
	if !ok || len(values) == 0 {
		writeJSON(w, http.StatusBadRequest, notaErrorResponse{Mensaje: missingCodigoMessage})
		return
	}

	client := clientctx.FromContext(r.Context())
	result, err := c.services.Grades.Lookup(r.Context(), services.LookupRequest{
		Codigo:    values[0],
		IP:        client.IP,
		UserAgent: client.UserAgent,
	})
	if err != nil {
		logging.FromContext(r.Context(), c.log).Error("grade lookup failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, notaErrorResponse{Mensaje: lookupErrorMessage})
		return
	}

	if !result.Encontrado {
		writeJSON(w, http.StatusNotFound, notaErrorResponse{Mensaje: result.Mensaje})
		return
	}

	writeJSON(w, http.StatusOK, notaFoundResponse{
		Encontrado: true,
		Codigo:     result.Record.Codigo,
		Nombre:     result.Record.Nombre,
		Nota:       result.Record.Nota,
	})
}
