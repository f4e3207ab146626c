package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/models"
	"github.com/blogem/consulta-notas/repositories"
)

// NotFoundMessage is shown to the student when their codigo is not in the table
const NotFoundMessage = "No se encontró una nota para ese número de cédula."

// LookupRequest carries the queried codigo and the client metadata recorded in the audit log
type LookupRequest struct {
	Codigo    string
	IP        string
	UserAgent string
}

// LookupResult is the outcome of a grade lookup
type LookupResult struct {
	Encontrado bool
	Record     models.GradeRecord
	Mensaje    string
}

// GradeService interface defines grade lookup business logic
type GradeService interface {
	Lookup(ctx context.Context, req LookupRequest) (*LookupResult, error)
}

// gradeService implements GradeService interface
type gradeService struct {
	gradeRepo repositories.GradeRepository
	auditRepo repositories.AuditRepository
	log       *zap.Logger
	now       func() time.Time
}

// NewGradeService creates a new grade service
func NewGradeService(gradeRepo repositories.GradeRepository, auditRepo repositories.AuditRepository, log *zap.Logger) GradeService {
	return &gradeService{
		gradeRepo: gradeRepo,
		auditRepo: auditRepo,
		log:       log,
		now:       time.Now,
	}
}

// Lookup reloads the grade table, looks up the trimmed codigo and records the
// query in the audit log whether or not it was found.
func (s *gradeService) Lookup(ctx context.Context, req LookupRequest) (*LookupResult, error) {
	codigo := strings.TrimSpace(req.Codigo)

	table, err := s.gradeRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grade table: %w", err)
	}

	record, found := table.Lookup(codigo)

	entry := &models.AuditEntry{
		Timestamp:  s.now().UTC().Truncate(time.Second),
		Codigo:     codigo,
		Encontrado: found,
		Nombre:     record.Nombre,
		IP:         req.IP,
		UserAgent:  req.UserAgent,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record query: %w", err)
	}

	s.log.Debug("grade lookup",
		zap.String("codigo", codigo),
		zap.Bool("encontrado", found),
		zap.Int("table_size", len(table)),
	)

	if !found {
		return &LookupResult{Encontrado: false, Mensaje: NotFoundMessage}, nil
	}

	return &LookupResult{Encontrado: true, Record: record}, nil
}
