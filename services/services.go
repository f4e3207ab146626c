package services

import (
	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/repositories"
)

// Services holds all service instances
type Services struct {
	Grades GradeService
	Audit  AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, log *zap.Logger) *Services {
	return &Services{
		Grades: NewGradeService(repos.Grades, repos.Audit, log),
		Audit:  NewAuditService(repos.Audit),
	}
}
