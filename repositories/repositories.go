package repositories

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/config"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Grades GradeRepository
	Audit  AuditRepository
}

// NewRepositories creates the repositories selected by cfg. db is only used
// by the sqlite audit backend and may be nil otherwise.
func NewRepositories(cfg *config.Config, db *sql.DB, log *zap.Logger) *Repositories {
	var audit AuditRepository
	if cfg.AuditBackend == config.AuditBackendSQLite && db != nil {
		audit = NewSQLiteAuditRepository(db)
	} else {
		audit = NewCSVAuditRepository(cfg.LogPath, cfg.Delimiter, log)
	}

	return &Repositories{
		Grades: NewGradeRepository(cfg.TablePath, cfg.Delimiter, log),
		Audit:  audit,
	}
}
