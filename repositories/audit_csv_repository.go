package repositories

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/models"
)

// csvAuditRepository appends audit entries to a delimited text file.
// Appends from one process are serialized through mu.
type csvAuditRepository struct {
	mu        sync.Mutex
	path      string
	delimiter rune
	log       *zap.Logger
}

// NewCSVAuditRepository creates an audit repository writing to the log file at path
func NewCSVAuditRepository(path string, delimiter rune, log *zap.Logger) AuditRepository {
	return &csvAuditRepository{path: path, delimiter: delimiter, log: log}
}

// Create appends entry, writing the header first when the file is new or empty
func (r *csvAuditRepository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry == nil {
		return ErrAuditEntryRequired
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat audit log: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = r.delimiter

	if info.Size() == 0 {
		if err := writer.Write(models.AuditLogHeader); err != nil {
			return fmt.Errorf("failed to encode audit header: %w", err)
		}
	}

	if err := writer.Write(auditRow(entry)); err != nil {
		return fmt.Errorf("failed to encode audit entry: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to encode audit entry: %w", err)
	}

	// One write per entry so a row is never split across appends
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// List reads the whole log. Columns are located through the header, so logs
// written with a different column set still load.
func (r *csvAuditRepository) List(ctx context.Context) ([]models.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	reader := newCSVReader(f, r.delimiter)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log header: %w", err)
	}
	columns := indexColumns(header)

	var entries []models.AuditEntry
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.log.Debug("skipping malformed audit row", zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("failed to read audit log: %w", err)
		}

		entries = append(entries, parseAuditRow(row, columns))
	}

	return entries, nil
}

// auditRow encodes entry in AuditLogHeader order
func auditRow(entry *models.AuditEntry) []string {
	return []string{
		entry.FormattedTimestamp(),
		entry.Codigo,
		strconv.FormatBool(entry.Encontrado),
		entry.Nombre,
		entry.IP,
		entry.UserAgent,
	}
}

func parseAuditRow(row []string, columns map[string]int) models.AuditEntry {
	entry := models.AuditEntry{
		Codigo:    column(row, columns, models.AuditColumnCodigo),
		Nombre:    column(row, columns, models.AuditColumnNombre),
		IP:        column(row, columns, models.AuditColumnIP),
		UserAgent: column(row, columns, models.AuditColumnUserAgent),
	}

	// ParseBool also accepts "True"/"False" from older logs
	if found, err := strconv.ParseBool(column(row, columns, models.AuditColumnEncontrado)); err == nil {
		entry.Encontrado = found
	}

	entry.Timestamp = parseAuditTimestamp(column(row, columns, models.AuditColumnTimestamp))
	return entry
}

// parseAuditTimestamp accepts RFC 3339 and the offset-less ISO-8601 form
// (interpreted as UTC). Unparseable values yield the zero time.
func parseAuditTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
