package services

import (
	"context"
	"fmt"

	"github.com/blogem/consulta-notas/models"
	"github.com/blogem/consulta-notas/repositories"
)

// AuditService interface defines read access to the audit log
type AuditService interface {
	GetAllConsultas(ctx context.Context) ([]models.AuditEntry, error)
}

type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAllConsultas returns every recorded query, oldest first
func (s *auditService) GetAllConsultas(ctx context.Context) ([]models.AuditEntry, error) {
	entries, err := s.auditRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit log: %w", err)
	}
	return entries, nil
}
