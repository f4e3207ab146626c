package repositories

import (
	"context"
	"errors"

	"github.com/blogem/consulta-notas/models"
)

// ErrAuditEntryRequired is returned when Create is called with a nil entry
var ErrAuditEntryRequired = errors.New("audit entry is required")

// AuditRepository handles audit log persistence
type AuditRepository interface {
	// Create appends one entry to the log
	Create(ctx context.Context, entry *models.AuditEntry) error
	// List returns every entry in insertion order. A missing log yields no entries.
	List(ctx context.Context) ([]models.AuditEntry, error)
}
