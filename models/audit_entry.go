package models

import "time"

// AuditEntry records a single grade query
type AuditEntry struct {
	ID         int64
	Timestamp  time.Time
	Codigo     string
	Encontrado bool
	Nombre     string
	IP         string
	UserAgent  string
}

// AuditTimestampFormat is the ISO-8601 layout used for audit timestamps (always UTC)
const AuditTimestampFormat = "2006-01-02T15:04:05Z07:00"

// Audit log column names
const (
	AuditColumnTimestamp  = "timestamp"
	AuditColumnCodigo     = "codigo"
	AuditColumnEncontrado = "encontrado"
	AuditColumnNombre     = "nombre"
	AuditColumnIP         = "ip"
	AuditColumnUserAgent  = "user_agent"
)

// AuditLogHeader is the header row of the audit log file
var AuditLogHeader = []string{
	AuditColumnTimestamp,
	AuditColumnCodigo,
	AuditColumnEncontrado,
	AuditColumnNombre,
	AuditColumnIP,
	AuditColumnUserAgent,
}

// FormattedTimestamp returns the timestamp as ISO-8601 UTC
func (e AuditEntry) FormattedTimestamp() string {
	if e.Timestamp.IsZero() {
		return ""
	}
	return e.Timestamp.UTC().Format(AuditTimestampFormat)
}
