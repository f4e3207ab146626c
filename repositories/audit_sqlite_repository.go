package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/consulta-notas/models"
)

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewSQLiteAuditRepository creates an audit repository backed by the consultas table
func NewSQLiteAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry == nil {
		return ErrAuditEntryRequired
	}

	query := `
		INSERT INTO consultas (timestamp, codigo, encontrado, nombre, ip, user_agent)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	result, err := r.db.ExecContext(
		ctx,
		query,
		timestamp.UTC(),
		entry.Codigo,
		entry.Encontrado,
		entry.Nombre,
		entry.IP,
		entry.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get audit entry ID: %w", err)
	}
	entry.ID = id

	return nil
}

// List retrieves every audit entry in insertion order
func (r *sqliteAuditRepository) List(ctx context.Context) ([]models.AuditEntry, error) {
	query := `
		SELECT id, timestamp, codigo, encontrado, nombre, ip, user_agent
		FROM consultas
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.Codigo,
			&entry.Encontrado,
			&entry.Nombre,
			&entry.IP,
			&entry.UserAgent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entry.Timestamp = entry.Timestamp.UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}
